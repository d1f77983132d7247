package typefence_test

import (
	"fmt"
	"testing"

	typefence "github.com/typefence/typefence"
)

// vault guards its balance mutations: debit is private to vault, report is
// protected and therefore open to announced embedders.
type vault struct {
	balance int
	debit   func(int) error
	report  func() (string, error)
	peek    func() int
}

func newVault() *vault {
	v := &vault{balance: 100}
	v.debit = typefence.Private(v, v.debitLocked)
	v.report = typefence.Protected(v, v.reportLocked)
	v.peek = typefence.Private(v, v.peekLocked)
	return v
}

func (v *vault) debitLocked(n int) error {
	v.balance -= n
	return nil
}

func (v *vault) reportLocked() (string, error) {
	return fmt.Sprintf("balance=%d", v.balance), nil
}

func (v *vault) peekLocked() int { return v.balance }

func (v *vault) spend(n int) error { return v.debit(n) }

func (v *vault) summary() (string, error) { return v.report() }

func (v *vault) snapshot() int { return v.peek() }

// auditedVault embeds vault; Announce in the constructor makes the embedding
// visible to protected checks.
type auditedVault struct {
	*vault
}

func newAuditedVault() *auditedVault {
	a := &auditedVault{vault: newVault()}
	typefence.Announce(a)
	return a
}

func (a *auditedVault) audit() (string, error) { return a.report() }

func (a *auditedVault) forceDebit(n int) error { return a.debit(n) }

func TestPrivate_AllowsOwnerMethods(t *testing.T) {
	v := newVault()
	if err := v.spend(5); err != nil {
		t.Fatalf("owner method should reach its private method, got %v", err)
	}
	if v.balance != 95 {
		t.Fatalf("debit did not run, balance=%d", v.balance)
	}
}

func TestPrivate_DeniesOutsideCalls(t *testing.T) {
	v := newVault()
	err := v.debit(5)
	iss, ok := typefence.AsIssues(err)
	if !ok || iss[0].Code != typefence.CodeAccessDenied {
		t.Fatalf("expected access_denied for a call from outside any type, got %v", err)
	}
	if v.balance != 100 {
		t.Fatalf("denied call must not run the body, balance=%d", v.balance)
	}
}

func TestPrivate_DeniesEmbedderMethods(t *testing.T) {
	a := newAuditedVault()
	err := a.forceDebit(5)
	if iss, ok := typefence.AsIssues(err); !ok || iss[0].Code != typefence.CodeAccessDenied {
		t.Fatalf("private must not admit embedder methods, got %v", err)
	}
}

func TestProtected_AllowsOwnerAndEmbedder(t *testing.T) {
	v := newVault()
	if _, err := v.summary(); err != nil {
		t.Fatalf("owner method should reach its protected method, got %v", err)
	}

	a := newAuditedVault()
	s, err := a.audit()
	if err != nil {
		t.Fatalf("announced embedder should reach the protected method, got %v", err)
	}
	if s != "balance=100" {
		t.Fatalf("unexpected report %q", s)
	}
}

func TestPrivate_PanicsWithoutErrorResult(t *testing.T) {
	v := newVault()
	if got := v.snapshot(); got != 100 {
		t.Fatalf("owner method should reach its private method, got %d", got)
	}
	defer func() {
		r := recover()
		iss, ok := r.(typefence.Issues)
		if !ok || iss[0].Code != typefence.CodeAccessDenied {
			t.Fatalf("expected Issues panic, got %v", r)
		}
	}()
	v.peek()
	t.Fatalf("expected panic before the body ran")
}

func TestProtected_DeniesOutsideCalls(t *testing.T) {
	v := newVault()
	_, err := v.report()
	if iss, ok := typefence.AsIssues(err); !ok || iss[0].Code != typefence.CodeAccessDenied {
		t.Fatalf("expected access_denied for a plain-function caller, got %v", err)
	}
}
