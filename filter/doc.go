// Package filter evaluates boolean expressions against structured log
// records read from JSON Lines streams.
//
// Expressions use the expr language and reference record fields by key:
//
//	f, err := filter.Compile(`level == "ERROR" && logger == "app"`)
//	if err != nil {
//	    return err
//	}
//
//	for rec, err := range filter.Records(r) {
//	    if err != nil {
//	        return err
//	    }
//	    ok, err := f.Match(rec)
//	    if err != nil {
//	        return err
//	    }
//	    if ok {
//	        fmt.Println(rec.Raw)
//	    }
//	}
package filter
