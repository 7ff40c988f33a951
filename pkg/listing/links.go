package listing

import (
	"net/url"
	"strings"
)

// Links makes urls to the workbench hosting the studio.
type Links struct {
	Workbench string
	Owner     string
	Project   string
}

func (l Links) base() string {
	return strings.TrimSuffix(l.Workbench, "/") + "/" + url.PathEscape(l.Owner) + "/" + url.PathEscape(l.Project)
}

// Available reports whether the workbench is configured.
func (l Links) Available() bool {
	return l.Workbench != "" && l.Owner != "" && l.Project != ""
}

// Jobs is the url of the job monitoring page.
func (l Links) Jobs() string {
	return l.base() + "/jobs"
}

// Preview is the url of the file preview page. Empty file means the project root.
func (l Links) Preview(file string) string {
	segs := []string{}
	for _, s := range strings.Split(strings.TrimPrefix(file, "/"), "/") {
		segs = append(segs, url.PathEscape(s))
	}
	return l.base() + "/preview/" + strings.Join(segs, "/")
}
