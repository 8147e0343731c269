package fringego

import "errors"

// ErrStillRunnable is returned by Unwrap when the generator's body has
// not yet returned: there is no S value to hand back.
var ErrStillRunnable = errors.New("fringego: generator is still runnable")
