// SPDX-License-Identifier: MIT

package kernels

import (
	"errors"
	"fmt"
)

// ErrShape is returned when a buffer length disagrees with the kernel's N.
var ErrShape = errors.New("kernels: buffer length does not match dimension")

func shapeErrorf(kernel, buffer string, got, want int) error {
	return fmt.Errorf("%s: %s has length %d, want %d: %w", kernel, buffer, got, want, ErrShape)
}
