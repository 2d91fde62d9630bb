package theme

import "context"

// Static is a fixed preference. Saves are discarded. Used for exports
// where there is no visitor to remember anything.
type Static string

func (s Static) Load(context.Context) (string, error) { return string(s), nil }

func (Static) Save(context.Context, string) error { return nil }
