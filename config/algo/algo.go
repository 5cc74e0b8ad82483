package algo

// Hash algorithms accepted for signing webhook payloads.
const (
	SHA224     string = "SHA224"
	SHA256     string = "SHA256"
	SHA384     string = "SHA384"
	SHA512     string = "SHA512"
	SHA3_224   string = "SHA3_224"
	SHA3_256   string = "SHA3_256"
	SHA3_384   string = "SHA3_384"
	SHA3_512   string = "SHA3_512"
	SHA512_224 string = "SHA512_224"
	SHA512_256 string = "SHA512_256"
)

var Algos = []string{
	SHA224, SHA256, SHA384, SHA512,
	SHA3_224, SHA3_256, SHA3_384, SHA3_512,
	SHA512_224, SHA512_256,
}

var M = func() map[string]bool {
	m := make(map[string]bool, len(Algos))
	for _, a := range Algos {
		m[a] = true
	}
	return m
}()
