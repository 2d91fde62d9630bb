package theme

import (
	"context"
	"errors"
)

// Layered chains stores. Load returns the first non-empty value; Save
// writes every layer and reports the joined errors.
type Layered []Store

func (l Layered) Load(ctx context.Context) (string, error) {
	var errs []error
	for _, s := range l {
		v, err := s.Load(ctx)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if v != "" {
			return v, nil
		}
	}
	return "", errors.Join(errs...)
}

func (l Layered) Save(ctx context.Context, mode string) error {
	var errs []error
	for _, s := range l {
		if err := s.Save(ctx, mode); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
