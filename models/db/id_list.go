package dbmodels

import (
	"database/sql/driver"
	"strings"
)

// IDList is an ordered set of user ids stored as a comma-joined text column.
// Order is preserved because the assignment path report depends on it.
type IDList []string

func (l IDList) Value() (driver.Value, error) {
	return strings.Join(l, ","), nil
}

func (l *IDList) Scan(value any) error {
	var raw string
	switch v := value.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	}
	*l = ParseIDList(raw)
	return nil
}

// ParseIDList splits a comma-joined id list, trimming blanks and dropping
// duplicates while keeping first-seen order.
func ParseIDList(raw string) IDList {
	if strings.TrimSpace(raw) == "" {
		return IDList{}
	}
	seen := map[string]bool{}
	result := IDList{}
	for _, part := range strings.Split(raw, ",") {
		id := strings.TrimSpace(part)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		result = append(result, id)
	}
	return result
}

// NewIDList builds an IDList from raw ids, trimming blanks and dropping
// duplicates while keeping first-seen order.
func NewIDList(ids []string) IDList {
	return ParseIDList(strings.Join(ids, ","))
}

func (l IDList) Contains(id string) bool {
	for _, item := range l {
		if item == id {
			return true
		}
	}
	return false
}

func (l IDList) Equal(other IDList) bool {
	if len(l) != len(other) {
		return false
	}
	for k := range l {
		if l[k] != other[k] {
			return false
		}
	}
	return true
}
