package generate_pdf

import (
	"fmt"
	"strings"
	"time"

	"folha-tarefa/internal/constants"
	"folha-tarefa/internal/service/shift"
)

var unsafeChars = strings.NewReplacer("/", "_", `\`, "_", ":", "_", "*", "_", "?", "_", `"`, "_", "<", "_", ">", "_", "|", "_")

// FolderName is "{prefix} {DD-MM-YYYY}_{SHIFT}", or just the date part when
// prefix is empty.
func FolderName(prefix string, date time.Time, s shift.Shift) string {
	name := date.Format(constants.FolderLayout) + "_" + s.Label()
	if prefix = strings.TrimSpace(prefix); prefix != "" {
		name = prefix + " " + name
	}
	return name
}

// FileName is "{prefix}_{supervisor}_{DD-MM-YYYY}_{SHIFT}.pdf"; the prefix
// and its separator are dropped when prefix is empty.
func FileName(prefix, supervisor string, date time.Time, s shift.Shift) string {
	name := fmt.Sprintf("%s_%s_%s.pdf",
		unsafeChars.Replace(strings.TrimSpace(supervisor)),
		date.Format(constants.FolderLayout),
		s.Label(),
	)
	if prefix = strings.TrimSpace(prefix); prefix != "" {
		name = prefix + "_" + name
	}
	return name
}
