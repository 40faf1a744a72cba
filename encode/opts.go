package encode

type EncodeOption func(*EncState)

func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}
func EncodeIDs(v bool) EncodeOption {
	return func(es *EncState) { es.ids = v }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
