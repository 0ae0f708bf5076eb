package verify

import "sync"

// Func is the verifier signature every entry in a Registry must satisfy:
// given a matched string, decide whether it's a genuine instance of
// whatever the pattern claims to find.
type Func func(string) bool

// Registry is a concurrent-safe name-to-Func store. Reads (pattern
// loading and scanning) vastly outnumber writes (registering a custom
// verifier at startup), so a sync.Map backs it directly rather than a
// mutex-guarded plain map.
type Registry struct {
	funcs sync.Map // string -> Func
}

// NewRegistry returns an empty Registry. Use Default for one
// pre-populated with every built-in verifier.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds or replaces the verifier stored under name.
func (r *Registry) Register(name string, fn Func) {
	r.funcs.Store(name, fn)
}

// Unregister removes the verifier stored under name, reporting whether
// one was present.
func (r *Registry) Unregister(name string) bool {
	_, existed := r.funcs.LoadAndDelete(name)
	return existed
}

// Lookup returns the verifier registered under name, if any.
func (r *Registry) Lookup(name string) (Func, bool) {
	v, ok := r.funcs.Load(name)
	if !ok {
		return nil, false
	}
	return v.(Func), true
}

var defaultRegistry = newDefaultRegistry()

// Default returns the package-level registry pre-populated with every
// built-in verifier, shared unless a caller constructs its own via
// NewRegistry.
func Default() *Registry { return defaultRegistry }

func newDefaultRegistry() *Registry {
	r := NewRegistry()
	for name, fn := range builtins() {
		r.Register(name, fn)
	}
	return r
}

func builtins() map[string]Func {
	return map[string]Func{
		"iban_mod97":                     IBANMod97,
		"luhn":                           Luhn,
		"dms_coordinate":                 DMSCoordinate,
		"high_entropy_token":             HighEntropyToken,
		"not_timestamp":                  NotTimestamp,
		"korean_zipcode_valid":           KoreanZipcodeValid,
		"us_zipcode_valid":               USZipcodeValid,
		"korean_bank_account_valid":      KoreanBankAccountValid,
		"generic_number_not_timestamp":   GenericNumberNotTimestamp,
		"contains_letter":                ContainsLetter,
		"us_ssn_valid":                   USSSNValid,
		"cjk_name_standalone":            CJKNameStandalone,
		"cn_national_id_valid":           CNNationalIDValid,
		"tw_national_id_valid":           TWNationalIDValid,
		"india_aadhaar_valid":            IndiaAadhaarValid,
		"india_pan_valid":                IndiaPANValid,
		"kr_business_registration_valid": KRBusinessRegistrationValid,
		"ipv4_public":                    IPv4Public,
		"not_repeating_pattern":          NotRepeatingPattern,
		"credit_card_bin_valid":          CreditCardBINValid,
		"kr_rrn_valid":                   KRRRNValid,
		"kr_alien_registration_valid":    KRAlienRegistrationValid,
		"kr_corporate_registration_valid": KRCorporateRegistrationValid,
		"jp_my_number_valid":             JPMyNumberValid,
		"spain_dni_valid":                SpainDNIValid,
		"spain_nie_valid":                SpainNIEValid,
		"netherlands_bsn_valid":          NetherlandsBSNValid,
		"poland_pesel_valid":             PolandPESELValid,
		"sweden_personnummer_valid":      SwedenPersonnummerValid,
		"france_insee_valid":             FranceINSEEValid,
		"belgium_rrn_valid":              BelgiumRRNValid,
		"finland_hetu_valid":             FinlandHETUValid,
	}
}
