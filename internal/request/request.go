// Package request validates the command line into an immutable Request.
package request

import "fmt"

// argsCount counts the program name, the interval and the site
const argsCount = 3

// Request pairs a validated interval with a validated site
type Request struct {
	Interval IntervalDuration
	Site     SiteName
}

// ParseRequest builds a Request from raw process arguments.
// args[0] is the program name and is ignored. The argument count is checked
// first, then the interval, then the site; the first failure is returned.
func ParseRequest(args []string) (Request, error) {
	if len(args) != argsCount {
		return Request{}, NewError(KindArgsQty, "", fmt.Errorf("expected %d arguments, got %d", argsCount, len(args)))
	}

	interval, err := ParseInterval(args[1])
	if err != nil {
		return Request{}, err
	}

	site, err := ParseSiteName(args[2])
	if err != nil {
		return Request{}, err
	}

	return Request{
		Interval: interval,
		Site:     site,
	}, nil
}
