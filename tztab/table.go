package tztab

// Offsets derived from the IANA time zone database, release 2024a.
// Seconds east of UTC: standard offset first, daylight offset second.
var table = map[string]Record{
	"UTC":     {0, 0},
	"Etc/UTC": {0, 0},
	"Etc/GMT": {0, 0},

	"Atlantic/Azores":    {-3600, 0},
	"Atlantic/Reykjavik": {0, 0},

	"Europe/Amsterdam":  {3600, 7200},
	"Europe/Athens":     {7200, 10800},
	"Europe/Berlin":     {3600, 7200},
	"Europe/Brussels":   {3600, 7200},
	"Europe/Bucharest":  {7200, 10800},
	"Europe/Budapest":   {3600, 7200},
	"Europe/Copenhagen": {3600, 7200},
	"Europe/Dublin":     {0, 3600},
	"Europe/Helsinki":   {7200, 10800},
	"Europe/Istanbul":   {10800, 10800},
	"Europe/Kyiv":       {7200, 10800},
	"Europe/Lisbon":     {0, 3600},
	"Europe/London":     {0, 3600},
	"Europe/Madrid":     {3600, 7200},
	"Europe/Moscow":     {10800, 10800},
	"Europe/Oslo":       {3600, 7200},
	"Europe/Paris":      {3600, 7200},
	"Europe/Prague":     {3600, 7200},
	"Europe/Riga":       {7200, 10800},
	"Europe/Rome":       {3600, 7200},
	"Europe/Sofia":      {7200, 10800},
	"Europe/Stockholm":  {3600, 7200},
	"Europe/Tallinn":    {7200, 10800},
	"Europe/Vienna":     {3600, 7200},
	"Europe/Vilnius":    {7200, 10800},
	"Europe/Warsaw":     {3600, 7200},
	"Europe/Zurich":     {3600, 7200},

	"America/Anchorage":              {-32400, -28800},
	"America/Argentina/Buenos_Aires": {-10800, -10800},
	"America/Bogota":                 {-18000, -18000},
	"America/Caracas":                {-14400, -14400},
	"America/Chicago":                {-21600, -18000},
	"America/Denver":                 {-25200, -21600},
	"America/Halifax":                {-14400, -10800},
	"America/Lima":                   {-18000, -18000},
	"America/Los_Angeles":            {-28800, -25200},
	"America/Mexico_City":            {-21600, -21600},
	"America/New_York":               {-18000, -14400},
	"America/Phoenix":                {-25200, -25200},
	"America/Santiago":               {-14400, -10800},
	"America/Sao_Paulo":              {-10800, -10800},
	"America/St_Johns":               {-12600, -9000},
	"America/Toronto":                {-18000, -14400},
	"America/Vancouver":              {-28800, -25200},
	"Pacific/Honolulu":               {-36000, -36000},

	"Africa/Cairo":        {7200, 10800},
	"Africa/Johannesburg": {7200, 7200},
	"Africa/Lagos":        {3600, 3600},
	"Africa/Nairobi":      {10800, 10800},

	"Asia/Bangkok":   {25200, 25200},
	"Asia/Colombo":   {19800, 19800},
	"Asia/Dhaka":     {21600, 21600},
	"Asia/Dubai":     {14400, 14400},
	"Asia/Hong_Kong": {28800, 28800},
	"Asia/Jakarta":   {25200, 25200},
	"Asia/Jerusalem": {7200, 10800},
	"Asia/Kabul":     {16200, 16200},
	"Asia/Karachi":   {18000, 18000},
	"Asia/Kathmandu": {20700, 20700},
	"Asia/Kolkata":   {19800, 19800},
	"Asia/Manila":    {28800, 28800},
	"Asia/Riyadh":    {10800, 10800},
	"Asia/Seoul":     {32400, 32400},
	"Asia/Shanghai":  {28800, 28800},
	"Asia/Singapore": {28800, 28800},
	"Asia/Taipei":    {28800, 28800},
	"Asia/Tehran":    {12600, 12600},
	"Asia/Tokyo":     {32400, 32400},
	"Asia/Yangon":    {23400, 23400},

	"Australia/Adelaide":  {34200, 37800},
	"Australia/Brisbane":  {36000, 36000},
	"Australia/Darwin":    {34200, 34200},
	"Australia/Melbourne": {36000, 39600},
	"Australia/Perth":     {28800, 28800},
	"Australia/Sydney":    {36000, 39600},

	"Pacific/Auckland": {43200, 46800},
	"Pacific/Chatham":  {45900, 49500},
	"Pacific/Fiji":     {43200, 43200},
	"Pacific/Guam":     {36000, 36000},
}
