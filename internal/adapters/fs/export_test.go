package fs

import "os"

// SetStat replaces the stat function used by the expander.
func (e *Expander) SetStat(fn func(string) (os.FileInfo, error)) {
	e.stat = fn
}
