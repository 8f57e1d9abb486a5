package finance

import (
	"fmt"

	"github.com/SscSPs/affiliate_ledger/internal/core/domain"
)

// warnings collects recoverable problems, dropping exact duplicates.
type warnings struct {
	list []domain.Warning
	seen map[domain.Warning]struct{}
}

func newWarnings() *warnings {
	return &warnings{list: []domain.Warning{}, seen: make(map[domain.Warning]struct{})}
}

func (w *warnings) add(code domain.WarningCode, recordID, format string, args ...any) {
	w.push(domain.Warning{Code: code, RecordID: recordID, Message: fmt.Sprintf(format, args...)})
}

func (w *warnings) push(ws ...domain.Warning) {
	for _, warn := range ws {
		if _, ok := w.seen[warn]; ok {
			continue
		}
		w.seen[warn] = struct{}{}
		w.list = append(w.list, warn)
	}
}

func (w *warnings) result() []domain.Warning {
	return w.list
}
