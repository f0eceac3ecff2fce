// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !ringq_verify

package ringq

// VerifyDefault is false unless built with -tags ringq_verify.
const VerifyDefault = false
