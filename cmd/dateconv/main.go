// Command dateconv parses minute-precision times in one zone and pattern
// and prints them in another, using the static offset table when the host
// has no time zone database.
//
// With no arguments it prints the current time. With -zones it lists the
// zones known to the static table.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lbdsh/mobile-date-tz/datetz"
	"github.com/lbdsh/mobile-date-tz/tztab"
)

var (
	inPattern  = flag.String("i", "", "pattern the arguments are read with (default \"YYYY-MM-DD HH:mm:ss\")")
	outPattern = flag.String("o", "", "pattern the results are printed with (default \"YYYY-MM-DD HH:mm:ss\")")
	inZone     = flag.String("z", "UTC", "zone the arguments are read in")
	outZone    = flag.String("oz", "", "zone the results are printed in (default input zone)")
	locale     = flag.String("locale", "", "locale for the LM month-name token")
	listZones  = flag.Bool("zones", false, "list known zones and exit")
)

func main() {
	flag.Parse()

	if *listZones {
		for _, zone := range tztab.Zones() {
			rec, _ := tztab.Lookup(zone)
			fmt.Printf("%s\t%d\t%d\n", zone, rec.StdOffsetSeconds, rec.DstOffsetSeconds)
		}
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		now, err := datetz.Now(*inZone)
		if err != nil {
			fatalf("%v", err)
		}
		emit(now)
		return
	}

	for _, arg := range args {
		v, err := datetz.Parse(arg, *inPattern, *inZone)
		if err != nil {
			fatalf("parsing %q: %v", arg, err)
		}
		emit(v)
	}
}

func emit(v *datetz.DateTime) {
	if *outZone != "" {
		if err := v.ConvertTo(*outZone); err != nil {
			fatalf("%v", err)
		}
	}
	fmt.Println(v.FormatInLocale(*outPattern, *locale))
}

func fatalf(f string, a ...any) {
	fmt.Fprintf(os.Stderr, "dateconv: %s\n", fmt.Sprintf(f, a...))
	os.Exit(1)
}
