package infer

import "fmt"

func inferErrorf(method string, err error) error {
	return fmt.Errorf("infer.%s: %w", method, err)
}
