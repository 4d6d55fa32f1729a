package aggregate

import "testing"

func TestSeedPaymentMethodsHasSingleDefault(t *testing.T) {
	methods := SeedPaymentMethods()

	if len(methods) != 2 {
		t.Fatalf("expected 2 seeded methods, got %d", len(methods))
	}

	def, ok := methods.Default()
	if !ok {
		t.Fatal("expected a default method")
	}
	if def.Kind != PaymentKindCard || def.Brand != "Visa" || def.Last4 != "1234" {
		t.Errorf("unexpected seeded default: %+v", def)
	}
}

func TestSetDefaultIsExclusive(t *testing.T) {
	methods := SeedPaymentMethods()

	if err := methods.SetDefault("2"); err != nil {
		t.Fatalf("SetDefault: %v", err)
	}

	defaults := 0
	for _, m := range methods {
		if m.IsDefault {
			defaults++
			if m.ID != "2" {
				t.Errorf("wrong method holds the default flag: %+v", m)
			}
		}
	}
	if defaults != 1 {
		t.Errorf("expected exactly one default, got %d", defaults)
	}
}

func TestSetDefaultUnknownID(t *testing.T) {
	methods := SeedPaymentMethods()

	if err := methods.SetDefault("missing"); err == nil {
		t.Fatal("expected error for unknown method id")
	}

	// Flags untouched on failure
	def, ok := methods.Default()
	if !ok || def.ID != "1" {
		t.Errorf("default changed by failed SetDefault: %+v", def)
	}
}

func TestAddPaymentMethod(t *testing.T) {
	var methods PaymentMethods

	methods, err := methods.Add(PaymentKindApplePay, "", "")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !methods[0].IsDefault {
		t.Error("first method added to an empty list should be the default")
	}

	methods, err = methods.Add(PaymentKindCard, "Mastercard", "9876")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if methods[1].IsDefault {
		t.Error("later additions must not steal the default flag")
	}

	if _, err := methods.Add("bitcoin", "", ""); err == nil {
		t.Error("expected error for unsupported payment kind")
	}
}
