package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Record is one row of a registered entity type, keyed by column name.
type Record map[string]any

// ListQuery narrows and orders a record list. Filters are equality matches;
// a nil value matches NULL.
type ListQuery struct {
	Filters map[string]any
	OrderBy string
	Desc    bool
	Limit   uint64
	Offset  uint64
}

// Action is a CRUD operation understood by the dispatcher.
type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

func (a Action) IsValid() bool {
	switch a {
	case ActionCreate, ActionRead, ActionUpdate, ActionDelete:
		return true
	}
	return false
}

// IDKind tells which key representation a table uses.
type IDKind int

const (
	IDKindInt IDKind = iota + 1
	IDKindUUID
)

func (k IDKind) String() string {
	switch k {
	case IDKindInt:
		return "integer"
	case IDKindUUID:
		return "uuid"
	}
	return "unknown"
}

// ID is a record key that is either a positive integer or a UUID.
// The zero value is "no id".
type ID struct {
	num  int64
	uid  uuid.UUID
	kind IDKind
}

// IntID returns an integer ID.
func IntID(n int64) ID { return ID{num: n, kind: IDKindInt} }

// UUIDID returns a UUID ID.
func UUIDID(u uuid.UUID) ID { return ID{uid: u, kind: IDKindUUID} }

// ParseID accepts the shapes an id takes after JSON or query-string decoding:
// integer types, integral float64, json.Number, decimal strings and UUID strings.
func ParseID(v any) (ID, error) {
	switch x := v.(type) {
	case ID:
		if x.IsZero() {
			return ID{}, fmt.Errorf("empty id")
		}
		return x, nil
	case int:
		return positiveInt(int64(x))
	case int32:
		return positiveInt(int64(x))
	case int64:
		return positiveInt(x)
	case float64:
		if x != math.Trunc(x) || x > math.MaxInt64 {
			return ID{}, fmt.Errorf("id %v is not an integer", x)
		}
		return positiveInt(int64(x))
	case json.Number:
		return parseIDString(x.String())
	case uuid.UUID:
		if x == uuid.Nil {
			return ID{}, fmt.Errorf("nil uuid")
		}
		return UUIDID(x), nil
	case string:
		return parseIDString(x)
	case nil:
		return ID{}, fmt.Errorf("id is required")
	}
	return ID{}, fmt.Errorf("unsupported id type %T", v)
}

func parseIDString(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ID{}, fmt.Errorf("id is required")
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return positiveInt(n)
	}
	u, err := uuid.Parse(s)
	if err != nil || u == uuid.Nil {
		return ID{}, fmt.Errorf("id %q is neither a positive integer nor a uuid", s)
	}
	return UUIDID(u), nil
}

func positiveInt(n int64) (ID, error) {
	if n <= 0 {
		return ID{}, fmt.Errorf("id %d must be positive", n)
	}
	return IntID(n), nil
}

func (id ID) Kind() IDKind { return id.kind }

func (id ID) IsZero() bool { return id.kind == 0 }

// Value returns the SQL argument for this id: int64 or uuid.UUID.
func (id ID) Value() any {
	if id.kind == IDKindUUID {
		return id.uid
	}
	return id.num
}

func (id ID) String() string {
	switch id.kind {
	case IDKindInt:
		return strconv.FormatInt(id.num, 10)
	case IDKindUUID:
		return id.uid.String()
	}
	return ""
}

func (id ID) MarshalJSON() ([]byte, error) {
	switch id.kind {
	case IDKindInt:
		return []byte(strconv.FormatInt(id.num, 10)), nil
	case IDKindUUID:
		return json.Marshal(id.uid.String())
	}
	return []byte("null"), nil
}
