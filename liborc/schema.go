//go:build !ios && !android && (amd64 || arm64)

package liborc

// DescribeType walks a native Type tree and returns its description.
// The Type pointer is only read during the call and may be released after.
func DescribeType(t Type) *TypeDesc {
	if t == nil {
		return nil
	}

	d := &TypeDesc{
		Kind:      TypeKind(orcshimTypeKind(t)),
		Precision: int32(orcshimTypePrecision(t)),
		Scale:     int32(orcshimTypeScale(t)),
		MaxLength: orcshimTypeMaxLength(t),
	}

	n := orcshimTypeSubtypeCount(t)
	if n == 0 {
		return d
	}

	d.Children = make([]*TypeDesc, 0, n)
	if d.Kind == KindStruct {
		d.FieldNames = make([]string, 0, n)
	}
	for i := uint64(0); i < n; i++ {
		d.Children = append(d.Children, DescribeType(Type(orcshimTypeSubtype(t, i))))
		if d.Kind == KindStruct {
			d.FieldNames = append(d.FieldNames, cString(orcshimTypeFieldName(t, i)))
		}
	}
	return d
}
