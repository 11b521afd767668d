package bot

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// ResolveDate turns a user date argument into the YYYY-MM-DD string the odds
// API day window uses. "today" resolves against now in the display zone; any
// other value must already be a valid YYYY-MM-DD date.
func ResolveDate(arg string, now time.Time, loc *time.Location) (string, error) {
	if strings.EqualFold(arg, "today") {
		return now.In(loc).Format(dateLayout), nil
	}
	if _, err := time.Parse(dateLayout, arg); err != nil {
		return "", fmt.Errorf("invalid date %q, expected \"today\" or YYYY-MM-DD", arg)
	}
	return arg, nil
}
