package diff

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/anishTP/echo-portal-sub004/pkg/model"
)

const (
	idSignatureLines = 3
	idSignatureWidth = 20
	idHashWidth      = 8
)

// AssignIDs stamps every hunk with a deterministic identifier derived
// from the file path, the hunk position and its leading content. Ids
// are idempotent across recomputation so stored comment anchors keep
// resolving, and edits elsewhere in the file leave a hunk's id alone
// as long as its own start position and leading lines are unchanged.
// The scheme is a heuristic, not collision-free.
func AssignIDs(path string, hunks []model.Hunk) {
	for i := range hunks {
		hunks[i].ID = hunkID(path, i, hunks[i])
	}
}

func hunkID(path string, index int, h model.Hunk) string {
	var sig strings.Builder
	sig.WriteString(path)
	sig.WriteString(strconv.Itoa(h.OldStart))
	sig.WriteString(strconv.Itoa(h.NewStart))
	for i := 0; i < len(h.Lines) && i < idSignatureLines; i++ {
		content := h.Lines[i].Content
		// truncate by runes so a multibyte character is never split
		if runes := []rune(content); len(runes) > idSignatureWidth {
			content = string(runes[:idSignatureWidth])
		}
		sig.WriteString(content)
	}

	var hash int32
	for _, c := range sig.String() {
		hash = hash*31 + c
	}
	v := int64(hash)
	if v < 0 {
		v = -v
	}
	enc := strconv.FormatInt(v, 36)
	if len(enc) > idHashWidth {
		enc = enc[:idHashWidth]
	}
	return fmt.Sprintf("hunk-%d-%s", index, enc)
}
