package utils

import (
	"fmt"
	"time"
)

// Midtrans reports timestamps in WIB without a zone suffix.
const midtransDateTimeLayout = "2006-01-02 15:04:05"

var wibLocation = time.FixedZone("WIB", 7*60*60)

func ConvertDateTimeToHumanReadableFormat(datetime int64) string {
	t := time.Unix(datetime, 0).In(wibLocation)
	return t.Format("02 January 2006, 15:04 WIB")
}

func ConvertDateTimeWibToUnixTimestamp(wibTime string) (int64, error) {
	t, err := time.ParseInLocation(midtransDateTimeLayout, wibTime, wibLocation)
	if err != nil {
		return 0, fmt.Errorf("error parsing time: %v", err)
	}

	return t.Unix(), nil
}
