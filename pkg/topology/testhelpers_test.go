package topology

import "github.com/google/uuid"

var testNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

func id(name string) NodeID {
	return uuid.NewSHA1(testNamespace, []byte(name))
}
