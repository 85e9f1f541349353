// Copyright (C) 2022-2023, OptionVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"errors"
)

var (
	ErrInvalidEmptyTx = errors.New("invalid empty transaction")
	ErrNotInitialized = errors.New("vm not initialized")
)
