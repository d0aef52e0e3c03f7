package storage

import "addressbook/internal/domain/types"

// samplePersons seeds a fresh address book so the first start is not empty.
func samplePersons() []types.Person {
	rows := []struct {
		name, phone, email, address string
		tags                        []string
	}{
		{"Alex Yeoh", "87438807", "alexyeoh@example.com", "Blk 30 Geylang Street 29, #06-40", []string{"friends"}},
		{"Bernice Yu", "99272758", "berniceyu@example.com", "Blk 30 Lorong 3 Serangoon Gardens, #07-18", []string{"colleagues", "friends"}},
		{"Charlotte Oliveiro", "93210283", "charlotte@example.com", "Blk 11 Ang Mo Kio Street 74, #11-04", []string{"neighbours"}},
		{"David Li", "91031282", "lidavid@example.com", "Blk 436 Serangoon Gardens Street 26, #16-43", []string{"family"}},
		{"Irfan Ibrahim", "92492021", "irfan@example.com", "Blk 47 Tampines Street 20, #17-35", []string{"classmates"}},
		{"Roy Balakrishnan", "92624417", "royb@example.com", "Blk 45 Aljunied Street 85, #11-31", []string{"colleagues"}},
	}

	out := make([]types.Person, 0, len(rows))
	for _, r := range rows {
		out = append(out, types.NewPerson(
			must(types.NewName(r.name)),
			must(types.NewPhone(r.phone)),
			must(types.NewEmail(r.email)),
			must(types.NewAddress(r.address)),
			must(types.NewTags(r.tags...))...,
		))
	}
	return out
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
