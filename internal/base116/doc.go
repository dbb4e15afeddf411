// Package base116 converts binary data to printable text and back using a
// 116-symbol alphabet.
//
// Data is processed in blocks of 6 bytes, each of which is read as one
// big-endian unsigned integer and written as 7 base-116 digits. A final block
// of k < 6 bytes is written as k+1 digits, so the length of the original data
// can be recovered from the number of symbols alone, without padding or a
// length field.
//
// Every symbol is a Latin Extended-A letter (U+0100 to U+0173) and takes
// exactly two bytes when written as UTF-8. An encoded payload can optionally be
// framed by the markers "ǱǄ" and "ǲǅ", which are not part of the alphabet.
//
// Encoding and decoding are lazy: Encode and Decode return iterators that do
// one block's worth of work per block pulled by the caller, and stop as soon
// as the caller stops ranging over them.
//
//	for r := range base116.Encode(slices.Values(data), base116.EncodeConfig{AddWrapper: true}) {
//	    ...
//	}
//
//	for b, err := range base116.DecodeBytes(src, base116.DecodeConfig{Relaxed: true}) {
//	    if err != nil {
//	        // report, then keep going or break
//	    }
//	}
package base116
