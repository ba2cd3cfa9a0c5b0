package monitoring

import (
	"regexp"
	"strings"
)

// reFuncName captures package, receiver, and method names out of a
// runtime.FuncForPC name.
var reFuncName = regexp.MustCompile(`(?:[^/]+/)*([^./]+)\.(?:\(?\*?([^.)]+)\)?\.)?(.+)$`)

func getSegmentName(fullFuncName string) string {
	matches := reFuncName.FindStringSubmatch(fullFuncName)
	if len(matches) < 4 {
		return fullFuncName
	}

	var parts []string
	for _, p := range matches[1:4] {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ".")
}
