// errors.go — flipper-level sentinels. Apart from ErrNilMesh, the only
// error Flip returns is that of a caller-supplied context cancelled
// mid-run.
package flipper

import "errors"

// ErrNilMesh indicates Flip was called with a nil mesh.
var ErrNilMesh = errors.New("flipper: mesh is nil")
