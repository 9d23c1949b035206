package morse

// Cloner allows types to provide deep copy logic.
// Implementing this interface is required for use with FieldProcessor.
//
// The Clone method must return a deep copy where modifications to the clone
// do not affect the original value. Tagged string slices and string
// pointers are replaced rather than written through, but nested struct
// pointers are followed, so a clone must copy those:
//
//	func (m Message) Clone() Message { return m }
//
//	func (e Envelope) Clone() Envelope {
//	    if e.Inner != nil {
//	        inner := *e.Inner
//	        e.Inner = &inner
//	    }
//	    return e
//	}
type Cloner[T any] interface {
	Clone() T
}
