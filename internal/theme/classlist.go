package theme

import "strings"

// ClassList is the class attribute of the document root.
// The zero value is ready to use.
type ClassList struct {
	classes []string
}

// NewClassList starts from the given classes, skipping blanks and repeats.
func NewClassList(classes ...string) *ClassList {
	l := &ClassList{}
	for _, c := range classes {
		l.Add(c)
	}
	return l
}

func (l *ClassList) Add(class string) {
	class = strings.TrimSpace(class)
	if class == "" || l.Has(class) {
		return
	}
	l.classes = append(l.classes, class)
}

func (l *ClassList) Remove(class string) {
	kept := l.classes[:0]
	for _, c := range l.classes {
		if c != class {
			kept = append(kept, c)
		}
	}
	l.classes = kept
}

func (l *ClassList) Has(class string) bool {
	for _, c := range l.classes {
		if c == class {
			return true
		}
	}
	return false
}

// String renders the attribute value.
func (l *ClassList) String() string {
	return strings.Join(l.classes, " ")
}
