// Package time contains time related helpers
package time

import "time"

// DateLayout is the day stamp used in export file names
const DateLayout = "2006-01-02"

// Now is the process clock; tests swap it with testkit.Swap
var Now = time.Now

// Today returns the local day stamp of Now
func Today() string { return Now().Format(DateLayout) }

// Since reports the elapsed time from t according to Now
func Since(t time.Time) time.Duration { return Now().Sub(t) }
