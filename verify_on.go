// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build ringq_verify

package ringq

// VerifyDefault is true when built with -tags ringq_verify.
// Postconditions and invariants are then checked unless disabled with
// SetVerification or Builder.NoVerify.
const VerifyDefault = true
