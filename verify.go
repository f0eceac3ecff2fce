// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import "code.hybscloud.com/atomix"

// verification is the process-level default, read once per queue at
// construction.
var verification atomix.Bool

func init() {
	verification.StoreRelease(VerifyDefault)
}

// SetVerification sets the process-level default for postcondition and
// invariant checking. It affects queues built afterwards; existing queues
// keep the setting they were built with. Preconditions are always checked.
//
// Safe to call from any goroutine.
func SetVerification(enabled bool) {
	verification.StoreRelease(enabled)
}

// Verification reports the current process-level default.
func Verification() bool {
	return verification.LoadAcquire()
}
