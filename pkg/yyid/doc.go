// Package yyid generates 128-bit random identifiers and renders them in
// their canonical text forms.
//
// # Format
//
// A YYID is 16 bytes drawn entirely from a cryptographically secure entropy
// source. It prints like a UUID but, unlike RFC 4122 values, reserves no
// bits for version or variant metadata: all 128 bits are random. Four
// fixed-length text encodings are provided:
//   - Simple:     02e7f0f6067e8c92b25c12c9180540a9                   (32)
//   - Hyphenated: 02e7f0f6-067e-8c92-b25c-12c9180540a9               (36)
//   - Braced:     {02e7f0f6-067e-8c92-b25c-12c9180540a9}             (38)
//   - URN:        urn:yyid:02e7f0f6-067e-8c92-b25c-12c9180540a9      (45)
//
// Each encoding is a zero-copy typed view over the same 16 bytes; converting
// between YYID and a view never copies or loses information. Views offer an
// allocation-free EncodeLower/EncodeUpper path into a caller buffer.
//
// # Entropy
//
// Package-level New uses crypto/rand and panics if the platform source
// fails: an identifier built from degraded randomness is worse than a crash.
// Callers that want an error instead use NewRandom, and tests can inject a
// deterministic source through a Generator.
//
// Usage
//
//	id := yyid.New()
//	fmt.Println(id)              // 02e7f0f6-067e-8c92-b25c-12c9180540a9
//	fmt.Println(id.Simple())     // 02e7f0f6067e8c92b25c12c9180540a9
//	fmt.Println(id.URN())        // urn:yyid:02e7f0f6-067e-8c92-b25c-12c9180540a9
package yyid
