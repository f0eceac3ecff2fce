// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package contract_test

import (
	"errors"
	"strings"
	"testing"

	"code.hybscloud.com/ringq/internal/contract"
)

var errBroken = errors.New("broken")

func TestRequire(t *testing.T) {
	if err := contract.Require(true, errBroken); err != nil {
		t.Fatalf("Require(true): got %v, want nil", err)
	}
	if err := contract.Require(false, errBroken); !errors.Is(err, errBroken) {
		t.Fatalf("Require(false): got %v, want errBroken", err)
	}
}

func TestViolationError(t *testing.T) {
	v := contract.New("dequeue", errBroken, "in = 1, out = 0")
	if !errors.Is(v, errBroken) {
		t.Fatalf("errors.Is(Violation, errBroken) = false")
	}
	msg := v.Error()
	for _, want := range []string{"dequeue", "broken", "in = 1"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("Error() = %q, missing %q", msg, want)
		}
	}

	bare := contract.New("enqueue", errBroken, "")
	if got := bare.Error(); got != "ringq: enqueue: broken" {
		t.Fatalf("Error() without state: got %q", got)
	}
}

func TestCatch(t *testing.T) {
	if v := contract.Catch(func() {}); v != nil {
		t.Fatalf("Catch(no panic): got %v, want nil", v)
	}

	v := contract.Catch(func() {
		panic(contract.New("enqueue", errBroken, ""))
	})
	if v == nil || v.Op != "enqueue" {
		t.Fatalf("Catch(violation): got %v", v)
	}
}

func TestCatchRepanicsForeignValues(t *testing.T) {
	defer func() {
		if r := recover(); r != "boom" {
			t.Fatalf("recovered %v, want boom", r)
		}
	}()
	contract.Catch(func() { panic("boom") })
	t.Fatal("Catch swallowed a foreign panic")
}
