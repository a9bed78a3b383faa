// Package registry provides a small named factory registry used to
// instantiate components from declarative configuration. Components are
// registered under a string key together with a factory that builds them
// from a map of raw parameters; factories decode the parameters into typed
// structs and return the concrete value.
//
// Example usage:
//
//	reg := registry.New[Processor]("processors")
//	reg.Register("blur", func(params map[string]any) (Processor, error) {
//	    var c struct{ Size int `json:"size"` }
//	    if err := registry.Decode(params, &c); err != nil {
//	        return nil, err
//	    }
//	    return &Blur{Size: c.Size}, nil
//	})
//	p, err := reg.Create("blur", map[string]any{"size": 5})
package registry
