package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/exploro/maprando/pkg/spoiler"
)

// WriteJSON serializes a SpoilerLog to w as indented JSON.
func WriteJSON(w io.Writer, log *spoiler.SpoilerLog) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(log); err != nil {
		return fmt.Errorf("export: encoding spoiler log as JSON: %w", err)
	}
	return nil
}
