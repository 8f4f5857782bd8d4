package cdx

// headerLen is the fixed prefix every CDX file begins with: an 8-byte
// magic, a 4-byte version marker, and 10 reserved zero bytes.
const headerLen = 22

// header is the literal byte sequence every CDX file starts with:
// "VjCD0100" followed by 0x04 0x03 0x02 0x01 and 10 zero bytes, 22
// bytes total.
var header = append([]byte("VjCD0100\x04\x03\x02\x01"), make([]byte, 10)...)

// docTagModern is the document object tag written by current
// ChemDraw versions.
const docTagModern uint16 = 0x8000

// legacyExtraBytes is the count of additional unknown-meaning bytes a
// legacy-header document carries after the document's object id, once
// its document tag doesn't match docTagModern.
const legacyExtraBytes = 23
