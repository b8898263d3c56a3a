package domain

// monitoredLocations is the static registry of population centers the
// analyzer evaluates every event against. Coordinates are city centers;
// population figures are 2020 census, rounded.
var monitoredLocations = []MonitoredLocation{
	{Name: "Manila", Latitude: 14.5995, Longitude: 120.9842, Population: 1846513},
	{Name: "Quezon City", Latitude: 14.6760, Longitude: 121.0437, Population: 2960048},
	{Name: "Davao City", Latitude: 7.1907, Longitude: 125.4553, Population: 1776949},
	{Name: "Cebu City", Latitude: 10.3157, Longitude: 123.8854, Population: 964169},
	{Name: "Zamboanga City", Latitude: 6.9214, Longitude: 122.0790, Population: 977234},
	{Name: "Taguig", Latitude: 14.5176, Longitude: 121.0509, Population: 886722},
	{Name: "Antipolo", Latitude: 14.5842, Longitude: 121.1763, Population: 887399},
	{Name: "Pasig", Latitude: 14.5764, Longitude: 121.0851, Population: 803159},
	{Name: "Cagayan de Oro", Latitude: 8.4542, Longitude: 124.6319, Population: 728402},
	{Name: "Valenzuela", Latitude: 14.7011, Longitude: 120.9830, Population: 714978},
	{Name: "Dasmarinas", Latitude: 14.3294, Longitude: 120.9367, Population: 703141},
	{Name: "General Santos", Latitude: 6.1164, Longitude: 125.1716, Population: 697315},
	{Name: "Paranaque", Latitude: 14.4793, Longitude: 121.0198, Population: 689992},
	{Name: "Bacoor", Latitude: 14.4624, Longitude: 120.9645, Population: 664625},
	{Name: "San Jose del Monte", Latitude: 14.8139, Longitude: 121.0453, Population: 651813},
	{Name: "Makati", Latitude: 14.5547, Longitude: 121.0244, Population: 629616},
	{Name: "Las Pinas", Latitude: 14.4445, Longitude: 120.9939, Population: 606293},
	{Name: "Bacolod", Latitude: 10.6765, Longitude: 122.9509, Population: 600783},
	{Name: "Iloilo City", Latitude: 10.7202, Longitude: 122.5621, Population: 457626},
	{Name: "Baguio", Latitude: 16.4023, Longitude: 120.5960, Population: 366358},
	{Name: "Legazpi", Latitude: 13.1391, Longitude: 123.7438, Population: 209533},
	{Name: "Tacloban", Latitude: 11.2444, Longitude: 125.0039, Population: 251881},
	{Name: "Butuan", Latitude: 8.9475, Longitude: 125.5406, Population: 372910},
	{Name: "Surigao City", Latitude: 9.7571, Longitude: 125.5131, Population: 171107},
	{Name: "Bohol (Tagbilaran)", Latitude: 9.6477, Longitude: 123.8556, Population: 104976},
	{Name: "Dumaguete", Latitude: 9.3103, Longitude: 123.3081, Population: 134103},
	{Name: "Cotabato City", Latitude: 7.2236, Longitude: 124.2464, Population: 325079},
	{Name: "Puerto Princesa", Latitude: 9.7392, Longitude: 118.7353, Population: 307079},
	{Name: "Laoag", Latitude: 18.1978, Longitude: 120.5936, Population: 111651},
	{Name: "Batangas City", Latitude: 13.7565, Longitude: 121.0583, Population: 351437},
}

// MonitoredLocations returns the static location registry. The returned
// slice is shared; callers must not mutate it.
func MonitoredLocations() []MonitoredLocation {
	return monitoredLocations
}
