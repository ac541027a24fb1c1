package domain

// BananoAddress is a ban_ prefixed banano account address
type BananoAddress string

func (a BananoAddress) String() string {
	return string(a)
}

func (a BananoAddress) IsEmpty() bool {
	return a == ""
}

func ToBananoAddresses(ss []string) []BananoAddress {
	res := make([]BananoAddress, len(ss))
	for i, s := range ss {
		res[i] = BananoAddress(s)
	}
	return res
}
