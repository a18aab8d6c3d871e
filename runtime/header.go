package cbor

// header is the decoded initial byte of one data item plus its argument.
// It lives only for the duration of the frame validating that item.
type header struct {
	off        int64 // offset of the initial byte
	lead       byte
	major      uint8
	add        uint8
	arg        uint64 // argument when !indefinite
	indefinite bool   // additional info 31; the break stop code for major type 7
}

// isBreak reports whether h is the break stop code.
func (h header) isBreak() bool {
	return h.indefinite && h.major == majorTypeSimple
}

// decodeHeader reads one initial byte and, for additional info 24..27,
// the big-endian argument that follows it.
func decodeHeader(c *cursor) (header, error) {
	h, err := readInitial(c)
	if err != nil {
		return h, err
	}
	return readArgument(c, h)
}

// readInitial reads the initial byte only. Reserved additional info values
// are rejected here, before anything else is read for the item.
func readInitial(c *cursor) (header, error) {
	off := c.off
	lead, err := c.readByte()
	if err != nil {
		return header{}, err
	}
	h := header{
		off:   off,
		lead:  lead,
		major: getMajorType(lead),
		add:   getAddInfo(lead),
	}
	if isReservedAddInfo(h.add) {
		return h, malformed(ErrReserved, off, int(lead))
	}
	h.indefinite = h.add == addInfoIndefinite
	return h, nil
}

// readArgument completes h by reading the argument bytes its additional
// info calls for.
func readArgument(c *cursor, h header) (header, error) {
	var n int
	switch {
	case h.indefinite:
		return h, nil
	case h.add <= addInfoDirect:
		h.arg = uint64(h.add)
		return h, nil
	case h.add == addInfoUint8:
		n = 1
	case h.add == addInfoUint16:
		n = 2
	case h.add == addInfoUint32:
		n = 4
	case h.add == addInfoUint64:
		n = 8
	}
	var u uint64
	for i := 0; i < n; i++ {
		b, err := c.readByte()
		if err != nil {
			return h, err
		}
		u = u<<8 | uint64(b)
	}
	h.arg = u
	return h, nil
}
