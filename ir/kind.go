package ir

import "fmt"

// Kind selects which payload an expression node carries.
type Kind int

const (
	NotSetKind Kind = iota
	ConstKind
	IdentKind
	SelectKind
	CallKind
	ListKind
	StructKind
	MapKind
	ComprehensionKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		NotSetKind:        "NotSet",
		ConstKind:         "Const",
		IdentKind:         "Ident",
		SelectKind:        "Select",
		CallKind:          "Call",
		ListKind:          "List",
		StructKind:        "Struct",
		MapKind:           "Map",
		ComprehensionKind: "Comprehension",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"NotSet":        NotSetKind,
		"Const":         ConstKind,
		"Ident":         IdentKind,
		"Select":        SelectKind,
		"Call":          CallKind,
		"List":          ListKind,
		"Struct":        StructKind,
		"Map":           MapKind,
		"Comprehension": ComprehensionKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		NotSetKind,
		ConstKind,
		IdentKind,
		SelectKind,
		CallKind,
		ListKind,
		StructKind,
		MapKind,
		ComprehensionKind,
	}
}

func (k Kind) IsLeaf() bool {
	switch k {
	case NotSetKind, ConstKind, IdentKind:
		return true
	default:
		return false
	}
}
