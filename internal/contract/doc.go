// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package contract provides design-by-contract checks for ringq.
//
// Two tiers:
//
//   - Require: preconditions. Always evaluated. A failed precondition is
//     the caller's fault and is returned as an ordinary error.
//   - Violation: postconditions and invariants. Only evaluated when
//     verification is enabled. A failure means the component itself is
//     broken and is raised as a panic carrying *Violation.
package contract
