package temporal

// ZoneID names a time zone, such as "Europe/Madrid". It is an opaque
// identifier: resolution to a numeric offset is deferred to a
// [ZoneResolver], so constructing a ZoneID never touches a time zone
// database.
type ZoneID string

// ZoneUTC is the UTC sentinel zone.
const ZoneUTC = ZoneID("UTC")

// ZoneIDOf returns the ZoneID for a zone name. The name is not checked
// against any database; an unknown name surfaces later from the resolver.
func ZoneIDOf(name string) ZoneID { return ZoneID(name) }

// String returns the zone name.
func (z ZoneID) String() string { return string(z) }

// IsUTC reports whether z is the UTC sentinel.
func (z ZoneID) IsUTC() bool { return z == ZoneUTC }
