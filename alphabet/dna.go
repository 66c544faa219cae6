package alphabet

// Unambiguous DNA bases and their complements.
//
//	Symbol  Meaning    Complement
//	A       Adenine    T
//	C       Cytosine   G
//	T       Thymine    A
//	G       Guanine    C
var (
	unambiguousDNASymbols    = []string{"A", "C", "T", "G"}
	unambiguousDNAComplement = []string{"T", "G", "A", "C"}
)

// IUPAC nucleotide codes and their complements.
//
//	Symbol  Meaning               Complement
//	A       Adenine               T
//	G       Guanine               C
//	C       Cytosine              G
//	T       Thymine               A
//	Y       Pyrimidine (C or T)   R
//	R       Purine (A or G)       Y
//	W       Weak (A or T)         W
//	S       Strong (G or C)       S
//	K       Keto (T or G)         M
//	M       Amino (C or A)        K
//	D       A, G, T (not C)       H
//	V       A, C, G (not T)       B
//	H       A, C, T (not G)       D
//	B       C, G, T (not A)       V
//	N       Any base              N
var (
	ambiguousDNASymbols = []string{
		"A", "G", "C", "T", "Y", "R", "W", "S", "K", "M", "D", "V", "H", "B", "N",
	}
	ambiguousDNAComplement = []string{
		"T", "C", "G", "A", "R", "Y", "W", "S", "M", "K", "H", "B", "D", "V", "N",
	}
)

// UnambiguousDNA returns a new alphabet of the four DNA bases ACTG with their complements.
func UnambiguousDNA() *List {
	return MustNewList(unambiguousDNASymbols,
		WithName("Unambiguous DNA"),
		WithSymbolSize(1),
		WithComplement(unambiguousDNAComplement),
	)
}

// AmbiguousDNA returns a new alphabet of the 15 IUPAC nucleotide codes with their complements.
func AmbiguousDNA() *List {
	return MustNewList(ambiguousDNASymbols,
		WithName("Ambiguous DNA"),
		WithSymbolSize(1),
		WithComplement(ambiguousDNAComplement),
	)
}
