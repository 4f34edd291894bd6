package stoich

import "testing"

func TestParseEquation(Te *testing.T) {
	r, err := ParseEquation("CH4 + 2O2 -> CO2 + 2H2O", nil)
	if err != nil {
		Te.Fatal(err)
	}
	if len(r.Reactants) != 2 || len(r.Products) != 2 {
		Te.Fatalf("got %d reactants, %d products", len(r.Reactants), len(r.Products))
	}
	if r.Reactants[0].Formula != "CH4" || r.Reactants[0].Coefficient != 1 {
		Te.Errorf("reactant 1: %+v", r.Reactants[0])
	}
	if r.Reactants[1].Formula != "O2" || r.Reactants[1].Coefficient != 2 {
		Te.Errorf("reactant 2: %+v", r.Reactants[1])
	}
	if r.Products[1].Formula != "H2O" || r.Products[1].Coefficient != 2 {
		Te.Errorf("product 2: %+v", r.Products[1])
	}
	//with these explicit coefficients the reaction is already balanced
	if !r.Balanced() {
		Te.Error("combustion with explicit coefficients reported unbalanced")
	}
	elems := r.Elements()
	want := []string{"C", "H", "O"}
	for i, sym := range want {
		if elems[i] != sym {
			Te.Errorf("Elements: got %v, want %v", elems, want)
			break
		}
	}
}

func TestParseEquationEquals(Te *testing.T) {
	r, err := ParseEquation("N2 + 3H2 = 2NH3", nil)
	if err != nil {
		Te.Fatal(err)
	}
	if len(r.Reactants) != 2 || len(r.Products) != 1 {
		Te.Fatalf("got %d reactants, %d products", len(r.Reactants), len(r.Products))
	}
	if !r.Balanced() {
		Te.Error("Haber reaction with explicit coefficients reported unbalanced")
	}
}

func TestParseEquationFormat(Te *testing.T) {
	for _, bad := range []string{
		"H2 O2",                //no separator
		"H2 -> O2 -> H2O",     //two separators
		"H2 = O2 = H2O",       //two separators
		"H2 -> O2 = H2O",      //mixed separators
		"-> H2O",              //empty left side
		"H2 + O2 ->",          //empty right side
	} {
		_, err := ParseEquation(bad, nil)
		if err == nil {
			Te.Errorf("%q accepted", bad)
			continue
		}
		if _, ok := err.(*EquationFormatError); !ok {
			Te.Errorf("%q: got %T (%v), want *EquationFormatError", bad, err, err)
		}
	}
}

//Compound-level failures surface with their own type, not as format errors.
func TestParseEquationBadCompound(Te *testing.T) {
	_, err := ParseEquation("H2 + Xy2 -> H2O", nil)
	uerr, ok := err.(*UnknownElementError)
	if !ok {
		Te.Fatalf("got %T (%v), want *UnknownElementError", err, err)
	}
	if uerr.Symbol != "Xy" {
		Te.Errorf("symbol: got %q", uerr.Symbol)
	}
	_, err = ParseEquation("H2 + + O2 -> H2O", nil)
	if _, ok := err.(*EmptyFormulaError); !ok {
		Te.Fatalf("got %T (%v), want *EmptyFormulaError", err, err)
	}
}
