package shapedoc

import "errors"

// ErrMalformedInput indicates the document does not follow the key-value,
// literal-block grammar shapedoc.Parse expects: a key whose value is neither
// "|" nor blank, or input that ends before a key's colon or before a literal
// block's last line is terminated. Stray text between entries is not
// rejected on its own; it becomes part of the next key's name.
var ErrMalformedInput = errors.New("shapedoc: malformed input")
