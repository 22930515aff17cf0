package gst

// stateInfo pairs the GST numeric state code with the state name.
type stateInfo struct {
	Name string
	Code string
}

// States maps the two-letter state abbreviation to its GST state code and
// name. Loaded once at init, never mutated.
var States = map[string]stateInfo{
	"AN": {Name: "Andaman and Nicobar Islands", Code: "35"},
	"AP": {Name: "Andhra Pradesh", Code: "37"},
	"AR": {Name: "Arunachal Pradesh", Code: "12"},
	"AS": {Name: "Assam", Code: "18"},
	"BR": {Name: "Bihar", Code: "10"},
	"CH": {Name: "Chandigarh", Code: "04"},
	"CG": {Name: "Chhattisgarh", Code: "22"},
	"DN": {Name: "Dadra and Nagar Haveli", Code: "26"},
	"DD": {Name: "Daman and Diu", Code: "25"},
	"DL": {Name: "Delhi", Code: "07"},
	"GA": {Name: "Goa", Code: "30"},
	"GJ": {Name: "Gujarat", Code: "24"},
	"HR": {Name: "Haryana", Code: "06"},
	"HP": {Name: "Himachal Pradesh", Code: "02"},
	"JK": {Name: "Jammu and Kashmir", Code: "01"},
	"JH": {Name: "Jharkhand", Code: "20"},
	"KA": {Name: "Karnataka", Code: "29"},
	"KL": {Name: "Kerala", Code: "32"},
	"LA": {Name: "Ladakh", Code: "38"},
	"LD": {Name: "Lakshadweep", Code: "31"},
	"MP": {Name: "Madhya Pradesh", Code: "23"},
	"MH": {Name: "Maharashtra", Code: "27"},
	"MN": {Name: "Manipur", Code: "14"},
	"ML": {Name: "Meghalaya", Code: "17"},
	"MZ": {Name: "Mizoram", Code: "15"},
	"NL": {Name: "Nagaland", Code: "13"},
	"OR": {Name: "Odisha", Code: "21"},
	"PY": {Name: "Puducherry", Code: "34"},
	"PB": {Name: "Punjab", Code: "03"},
	"RJ": {Name: "Rajasthan", Code: "08"},
	"SK": {Name: "Sikkim", Code: "11"},
	"TN": {Name: "Tamil Nadu", Code: "33"},
	"TS": {Name: "Telangana", Code: "36"},
	"TR": {Name: "Tripura", Code: "16"},
	"UP": {Name: "Uttar Pradesh", Code: "09"},
	"UK": {Name: "Uttarakhand", Code: "05"},
	"WB": {Name: "West Bengal", Code: "19"},
}

// StateName returns the state name for a two-digit GST state code, or ""
// when the code is not a known state.
func StateName(stateCode string) string {
	for _, info := range States {
		if info.Code == stateCode {
			return info.Name
		}
	}
	return ""
}
