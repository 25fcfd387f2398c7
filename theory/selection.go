package theory

import (
	"encoding/json"
	"sort"
	"strconv"

	"github.com/jsphweid/fretdex/pitch"
	"golang.org/x/exp/slices"
)

// NotesFor spells out t from root. The result is in interval order, which is
// scale degree order, not necessarily ascending once it wraps past B.
func NotesFor(root pitch.Class, t Type) []pitch.Class {
	intervals := t.info().intervals
	res := make([]pitch.Class, len(intervals))
	for i, interval := range intervals {
		res[i] = pitch.Mod(int(root) + interval)
	}
	return res
}

// Selection is a chord or scale at a root. Its notes are computed once by
// NewSelection and cannot be edited independently of root and type. The zero
// value is C major.
type Selection struct {
	root  pitch.Class
	typ   Type
	notes []pitch.Class
}

func NewSelection(root pitch.Class, t Type) Selection {
	return Selection{root: root, typ: t, notes: NotesFor(root, t)}
}

func (s Selection) Root() pitch.Class { return s.root }

// members is the note list, rebuilt for a zero value.
func (s Selection) members() []pitch.Class {
	if s.notes == nil {
		return NotesFor(s.root, s.typ)
	}
	return s.notes
}

func (s Selection) Type() Type { return s.typ }

func (s Selection) Kind() Kind { return Classify(s.typ) }

// Notes returns a copy of the member pitch classes in degree order.
func (s Selection) Notes() []pitch.Class {
	notes := s.members()
	res := make([]pitch.Class, len(notes))
	copy(res, notes)
	return res
}

// WithRoot returns the same type rebuilt on a new root.
func (s Selection) WithRoot(root pitch.Class) Selection {
	return NewSelection(root, s.typ)
}

func (s Selection) WithType(t Type) Selection {
	return NewSelection(s.root, t)
}

func (s Selection) Equal(o Selection) bool {
	return s.root == o.root && s.typ == o.typ && slices.Equal(s.members(), o.members())
}

func (s Selection) String() string {
	return s.root.String() + " " + s.typ.String()
}

func (s Selection) IsMember(c pitch.Class) bool {
	return slices.Contains(s.members(), c)
}

// DegreeInfo describes where a member note sits in the selection.
type DegreeInfo struct {
	Class     pitch.Class `json:"note"`
	Degree    int         `json:"degree"`
	Important bool        `json:"isImportant"`
}

// DegreeInfo locates c in the selection. The degree is 1-based and the
// root, third and fifth positions are important. ok is false for non-members.
func (s Selection) DegreeInfo(c pitch.Class) (DegreeInfo, bool) {
	i := slices.Index(s.members(), c)
	if i == -1 {
		return DegreeInfo{}, false
	}
	degree := i + 1
	return DegreeInfo{
		Class:     c,
		Degree:    degree,
		Important: degree == 1 || degree == 3 || degree == 5,
	}, true
}

func IsMember(c pitch.Class, s Selection) bool {
	return s.IsMember(c)
}

func DegreeInfoFor(c pitch.Class, s Selection) (DegreeInfo, bool) {
	return s.DegreeInfo(c)
}

// OrdinalSuffix returns "1st", "2nd", "3rd", "4th" ...
func OrdinalSuffix(degree int) string {
	suffix := "th"
	switch degree % 10 {
	case 1:
		suffix = "st"
	case 2:
		suffix = "nd"
	case 3:
		suffix = "rd"
	}
	if degree%100 >= 11 && degree%100 <= 13 {
		suffix = "th"
	}
	return strconv.Itoa(degree) + suffix
}

type selectionJSON struct {
	Type  Type          `json:"type"`
	Kind  Kind          `json:"kind"`
	Label string        `json:"label"`
	Root  pitch.Class   `json:"rootNote"`
	Notes []pitch.Class `json:"notes"`
}

func (s Selection) MarshalJSON() ([]byte, error) {
	return json.Marshal(selectionJSON{
		Type:  s.typ,
		Kind:  s.Kind(),
		Label: s.typ.Label(),
		Root:  s.root,
		Notes: s.members(),
	})
}

// UnmarshalJSON rebuilds the notes from root and type; any notes in the
// input are ignored.
func (s *Selection) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type Type        `json:"type"`
		Root pitch.Class `json:"rootNote"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = NewSelection(raw.Root, raw.Type)
	return nil
}

// Identify returns every selection that contains all of classes. Chords come
// before scales, then fewer extra notes, then root, then type order.
func Identify(classes []pitch.Class) []Selection {
	if len(classes) == 0 {
		return nil
	}
	var res []Selection
	for _, root := range pitch.Classes() {
		for _, t := range AllTypes() {
			sel := NewSelection(root, t)
			if containsAll(sel.notes, classes) {
				res = append(res, sel)
			}
		}
	}
	distinct := countDistinct(classes)
	sort.SliceStable(res, func(i, j int) bool {
		a, b := res[i], res[j]
		if a.Kind() != b.Kind() {
			return a.Kind() == Chord
		}
		extraA, extraB := len(a.notes)-distinct, len(b.notes)-distinct
		if extraA != extraB {
			return extraA < extraB
		}
		if a.root != b.root {
			return a.root < b.root
		}
		return a.typ < b.typ
	})
	return res
}

func containsAll(notes []pitch.Class, classes []pitch.Class) bool {
	for _, c := range classes {
		if !slices.Contains(notes, c) {
			return false
		}
	}
	return true
}

func countDistinct(classes []pitch.Class) int {
	seen := make(map[pitch.Class]bool, len(classes))
	for _, c := range classes {
		seen[c] = true
	}
	return len(seen)
}
