package logging

import (
	"context"

	"github.com/rs/zerolog"
)

type fieldsKey struct{}

// Fields are the log attributes carried on a context. Empty values are not
// emitted.
type Fields struct {
	View     string
	CourseID string
}

// FieldsFrom returns the fields stored on ctx, or the zero value.
func FieldsFrom(ctx context.Context) Fields {
	if ctx == nil {
		return Fields{}
	}
	f, _ := ctx.Value(fieldsKey{}).(Fields)
	return f
}

func withFields(ctx context.Context, update func(*Fields)) context.Context {
	f := FieldsFrom(ctx)
	update(&f)
	return context.WithValue(ctx, fieldsKey{}, f)
}

// WithView records the mounted view. Navigating away from a course view
// should start again from the base context so the course does not leak.
func WithView(ctx context.Context, view string) context.Context {
	return withFields(ctx, func(f *Fields) { f.View = view })
}

func WithCourseID(ctx context.Context, courseID string) context.Context {
	return withFields(ctx, func(f *Fields) { f.CourseID = courseID })
}

// ContextHook copies Fields from the event's context onto the event. Attach
// it to a logger and pass the context with Event.Ctx.
type ContextHook struct{}

func (ContextHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	f := FieldsFrom(e.GetCtx())
	if f.View != "" {
		e.Str("view", f.View)
	}
	if f.CourseID != "" {
		e.Str("course_id", f.CourseID)
	}
}
