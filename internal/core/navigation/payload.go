package navigation

// Payload is data carried along with a navigation request. Each variant
// declares which views accept it, so a view only ever receives the shape it
// expects.
type Payload interface {
	accepts(View) bool
}

// CoursePayload selects the course shown by classroom views.
type CoursePayload struct {
	ID    string
	Title string
}

func (CoursePayload) accepts(v View) bool {
	return v == ViewClassroom || v == ViewVirtualClassroom
}

// Accepts reports whether payload p may be delivered to view v. A nil
// payload is accepted everywhere.
func Accepts(p Payload, v View) bool {
	if p == nil {
		return true
	}
	return p.accepts(v)
}
