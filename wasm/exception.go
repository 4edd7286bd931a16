package wasm

// decodeExceptionSection reads the feature-gated "exception" custom
// section: a count of exceptions, each a list of concrete parameter
// types.
func (d *decoder) decodeExceptionSection() error {
	count, err := d.c.readVarU32("exception count")
	if err != nil {
		return err
	}
	if err := d.sinkCall("BeginExceptionSection", d.sink.BeginExceptionSection(count)); err != nil {
		return err
	}
	for i := uint32(0); i < count; i++ {
		types, err := d.readConcreteTypeVec("exception param count")
		if err != nil {
			return err
		}
		if err := d.sinkCall("OnExceptionType", d.sink.OnExceptionType(i, types)); err != nil {
			return err
		}
	}
	d.numExceptions = count
	d.sawExceptionSection = true
	return d.sinkCall("EndExceptionSection", d.sink.EndExceptionSection())
}
