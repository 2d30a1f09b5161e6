package policyfile

import (
	"os"
	"path/filepath"
	"testing"

	"paycalc/internal/domain/payroll"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestLoadPolicyEmptyPathReturnsDefaults(t *testing.T) {
	policy, err := LoadPolicy("")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if policy.BasicPctOfGross != payroll.DefaultPolicy().BasicPctOfGross {
		t.Fatalf("expected defaults, got %+v", policy)
	}
}

func TestLoadPolicyOverridesDefaults(t *testing.T) {
	path := writeFile(t, "policy.yaml", `
basicPctOfGross: 0.5
professionalTax:
  apply: true
  monthlyAmount: 150
`)

	policy, err := LoadPolicy(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if policy.BasicPctOfGross != 0.5 {
		t.Fatalf("expected override 0.5, got %v", policy.BasicPctOfGross)
	}
	if policy.ProfessionalTax.MonthlyAmount != 150 {
		t.Fatalf("expected pt 150, got %v", policy.ProfessionalTax.MonthlyAmount)
	}
	// Untouched fields keep their defaults.
	if policy.ProvidentFund.EmployeeRate != 0.12 {
		t.Fatalf("expected default pf rate, got %v", policy.ProvidentFund.EmployeeRate)
	}
}

func TestLoadPolicyRejectsInvalid(t *testing.T) {
	path := writeFile(t, "policy.yaml", "basicPctOfGross: 1.5\n")
	if _, err := LoadPolicy(path); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestLoadPolicyMissingFile(t *testing.T) {
	if _, err := LoadPolicy(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected read error")
	}
}

func TestLoadPresets(t *testing.T) {
	path := writeFile(t, "presets.yaml", `
presets:
  - name: Asha Rao
    monthlyGross: 40000
    fixedAllowances:
      conveyance: 1600
      medical: 1250
      lunch: 1150
  - name: Vikram Iyer
    monthlyGross: 90000
`)

	list, err := LoadPresets(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 presets, got %d", len(list))
	}
	if list[0].Allowances.Conveyance != 1600 {
		t.Fatalf("unexpected allowances: %+v", list[0].Allowances)
	}
}
