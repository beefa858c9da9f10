package help

import (
	"fmt"
	"os"
)

func Dbg(format string, a ...any) {
	fmt.Fprintf(os.Stderr, "[DBG] "+format+"\n", a...)
}

// FormatSize renders a byte count in the nearest binary unit, one decimal.
func FormatSize(size int64) string {
	units := []string{"B", "KB", "MB", "GB", "TB"}
	v := float64(size)
	i := 0
	for v >= 1024 && i < len(units)-1 {
		v /= 1024
		i++
	}
	return fmt.Sprintf("%.1f %s", v, units[i])
}
