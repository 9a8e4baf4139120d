package itemset

import (
	"encoding/binary"
)

import (
	"github.com/timtadh/data-structures/errors"
)

func Serialize(s Itemset) []byte {
	return s.Label()
}

func Deserialize(bytes []byte) (Itemset, error) {
	if len(bytes) < 4 {
		return nil, errors.Errorf("itemset key too short (%d bytes)", len(bytes))
	}
	size := int(binary.BigEndian.Uint32(bytes[0:4]))
	if len(bytes) != 4*(size+1) {
		return nil, errors.Errorf("itemset key of %d bytes cannot hold %d items", len(bytes), size)
	}
	s := make(Itemset, 0, size)
	o := 4
	for i := 0; i < size; i++ {
		s = append(s, Item(int32(binary.BigEndian.Uint32(bytes[o:o+4]))))
		o += 4
	}
	return s, nil
}

func SerializeInt32(i int32) []byte {
	bytes := make([]byte, 4)
	binary.BigEndian.PutUint32(bytes, uint32(i))
	return bytes
}

func DeserializeInt32(bytes []byte) int32 {
	return int32(binary.BigEndian.Uint32(bytes))
}
