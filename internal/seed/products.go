package seed

import "github.com/Simplici0/kalkulator/internal/catalog"

var initialProducts = []catalog.Product{
	{Behandlung: "Einsetzen", Produkt: "Easy Invisible", Typ: "3.5 OM", Laenge: "40 cm", ArtikelID: "18602160", Preis: 52.5, Info: "4 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Invisible", Typ: "3", Laenge: "40 cm", ArtikelID: "18602159", Preis: 50, Info: "4 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Invisible", Typ: "1", Laenge: "40 cm", ArtikelID: "18602153", Preis: 50, Info: "4 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Invisible", Typ: "10AA", Laenge: "40 cm", ArtikelID: "18602155", Preis: 52.5, Info: "4 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Invisible", Typ: "10AA OM", Laenge: "40 cm", ArtikelID: "18602156", Preis: 52.5, Info: "4 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Invisible", Typ: "8AA", Laenge: "40 cm", ArtikelID: "18602166", Preis: 52.5, Info: "4 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Invisible", Typ: "10S", Laenge: "55 cm", ArtikelID: "18602218", Preis: 92, Info: "4 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Invisible", Typ: "10A", Laenge: "55 cm", ArtikelID: "18602214", Preis: 92, Info: "4 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Invisible", Typ: "L10", Laenge: "55 cm", ArtikelID: "18602231", Preis: 92, Info: "4 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Invisible", Typ: "10G", Laenge: "55 cm", ArtikelID: "18602217", Preis: 92, Info: "4 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Invisible", Typ: "9G.10 OM", Laenge: "55 cm", ArtikelID: "18602230", Preis: 92, Info: "4 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Invisible", Typ: "9G", Laenge: "55 cm", ArtikelID: "18602229", Preis: 92, Info: "4 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Invisible", Typ: "9.8G", Laenge: "55 cm", ArtikelID: "18602227", Preis: 92, Info: "4 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Invisible", Typ: "9A", Laenge: "55 cm", ArtikelID: "18602228", Preis: 92, Info: "4 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Invisible", Typ: "L8", Laenge: "55 cm", ArtikelID: "18602234", Preis: 92, Info: "4 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Invisible", Typ: "8A", Laenge: "55 cm", ArtikelID: "18602224", Preis: 92, Info: "4 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Invisible", Typ: "8A.9A", Laenge: "55 cm", ArtikelID: "18602225", Preis: 92, Info: "4 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Invisible", Typ: "7G.8G OM", Laenge: "55 cm", ArtikelID: "18602223", Preis: 92, Info: "4 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Invisible", Typ: "6G.8G", Laenge: "55 cm", ArtikelID: "18602222", Preis: 92, Info: "4 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Invisible", Typ: "5RM", Laenge: "55 cm", ArtikelID: "18602221", Preis: 82, Info: "4 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Invisible", Typ: "L6", Laenge: "55 cm", ArtikelID: "18602233", Preis: 82, Info: "4 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Invisible", Typ: "L5", Laenge: "55 cm", ArtikelID: "18602232", Preis: 82, Info: "4 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Invisible", Typ: "3.5 OM", Laenge: "55 cm", ArtikelID: "18602220", Preis: 92, Info: "4 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Invisible", Typ: "3", Laenge: "55 cm", ArtikelID: "18602219", Preis: 82, Info: "4 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Invisible", Typ: "1", Laenge: "55 cm", ArtikelID: "18602213", Preis: 82, Info: "4 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Invisible", Typ: "10AA", Laenge: "55 cm", ArtikelID: "18602215", Preis: 92, Info: "4 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Invisible", Typ: "10AA OM", Laenge: "55 cm", ArtikelID: "18602216", Preis: 92, Info: "4 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Invisible", Typ: "8AA", Laenge: "55 cm", ArtikelID: "18602226", Preis: 92, Info: "4 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Length", Typ: "10A", Laenge: "55 cm", ArtikelID: "18601765", Preis: 195, Info: "2,8 cm breit / Inhalt: 10 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Length", Typ: "L10", Laenge: "55 cm", ArtikelID: "18601764", Preis: 195, Info: "2,8 cm breit / Inhalt: 10 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Length", Typ: "10G", Laenge: "55 cm", ArtikelID: "18601014", Preis: 195, Info: "2,8 cm breit / Inhalt: 10 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Length", Typ: "9G", Laenge: "55 cm", ArtikelID: "18601011", Preis: 195, Info: "2,8 cm breit / Inhalt: 10 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Length", Typ: "9.8G", Laenge: "55 cm", ArtikelID: "18601015", Preis: 195, Info: "2,8 cm breit / Inhalt: 10 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Length", Typ: "L8", Laenge: "55 cm", ArtikelID: "18601762", Preis: 195, Info: "2,8 cm breit / Inhalt: 10 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Length", Typ: "8A", Laenge: "55 cm", ArtikelID: "18601016", Preis: 195, Info: "2,8 cm breit / Inhalt: 10 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Length", Typ: "8A.9A", Laenge: "55 cm", ArtikelID: "18601012", Preis: 195, Info: "2,8 cm breit / Inhalt: 10 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Length", Typ: "6G.8G", Laenge: "55 cm", ArtikelID: "18601013", Preis: 195, Info: "2,8 cm breit / Inhalt: 10 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Length", Typ: "L5", Laenge: "55 cm", ArtikelID: "18601759", Preis: 185, Info: "2,8 cm breit / Inhalt: 10 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Length", Typ: "3", Laenge: "55 cm", ArtikelID: "18601756", Preis: 185, Info: "2,8 cm breit / Inhalt: 10 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Length", Typ: "1", Laenge: "55 cm", ArtikelID: "18601754", Preis: 185, Info: "2,8 cm breit / Inhalt: 10 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Volume", Typ: "10A", Laenge: "40 cm", ArtikelID: "18601742", Preis: 120, Info: "2,8 cm breit / Inhalt: 10 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Volume", Typ: "L10", Laenge: "40 cm", ArtikelID: "18601743", Preis: 120, Info: "2,8 cm breit / Inhalt: 10 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Volume", Typ: "10G", Laenge: "40 cm", ArtikelID: "18602008", Preis: 120, Info: "2,8 cm breit / Inhalt: 10 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Volume", Typ: "9G", Laenge: "40 cm", ArtikelID: "18602005", Preis: 120, Info: "2,8 cm breit / Inhalt: 10 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Volume", Typ: "9.8G", Laenge: "40 cm", ArtikelID: "18602009", Preis: 120, Info: "2,8 cm breit / Inhalt: 10 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Volume", Typ: "L8", Laenge: "40 cm", ArtikelID: "18601745", Preis: 120, Info: "2,8 cm breit / Inhalt: 10 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Volume", Typ: "8A", Laenge: "40 cm", ArtikelID: "18602010", Preis: 120, Info: "2,8 cm breit / Inhalt: 10 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Volume", Typ: "8A.9A", Laenge: "40 cm", ArtikelID: "18602006", Preis: 120, Info: "2,8 cm breit / Inhalt: 10 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Volume", Typ: "6G.8G", Laenge: "40 cm", ArtikelID: "18602007", Preis: 120, Info: "2,8 cm breit / Inhalt: 10 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Volume", Typ: "L5", Laenge: "40 cm", ArtikelID: "18601748", Preis: 116, Info: "2,8 cm breit / Inhalt: 10 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Volume", Typ: "3", Laenge: "40 cm", ArtikelID: "18601751", Preis: 116, Info: "2,8 cm breit / Inhalt: 10 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Volume", Typ: "1", Laenge: "40 cm", ArtikelID: "18601753", Preis: 116, Info: "2,8 cm breit / Inhalt: 10 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Tape Extensions", Typ: "10A", Laenge: "25 cm", ArtikelID: "18601985", Preis: 19, Info: "7 cm breit / Inhalt: 1 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Tape Extensions", Typ: "L10", Laenge: "25 cm", ArtikelID: "18601802", Preis: 19, Info: "7 cm breit / Inhalt: 1 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Tape Extensions", Typ: "10G", Laenge: "25 cm", ArtikelID: "18601986", Preis: 19, Info: "7 cm breit / Inhalt: 1 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Tape Extensions", Typ: "9G", Laenge: "25 cm", ArtikelID: "18601987", Preis: 19, Info: "7 cm breit / Inhalt: 1 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Tape Extensions", Typ: "9.8G", Laenge: "25 cm", ArtikelID: "18601992", Preis: 19, Info: "7 cm breit / Inhalt: 1 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Tape Extensions", Typ: "L8", Laenge: "25 cm", ArtikelID: "18601804", Preis: 19, Info: "7 cm breit / Inhalt: 1 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Tape Extensions", Typ: "8A", Laenge: "25 cm", ArtikelID: "18601993", Preis: 19, Info: "7 cm breit / Inhalt: 1 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Tape Extensions", Typ: "8A.9A", Laenge: "25 cm", ArtikelID: "18601988", Preis: 19, Info: "7 cm breit / Inhalt: 1 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Tape Extensions", Typ: "6G.8G", Laenge: "25 cm", ArtikelID: "18601989", Preis: 19, Info: "7 cm breit / Inhalt: 1 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Tape Extensions", Typ: "L5", Laenge: "25 cm", ArtikelID: "18601990", Preis: 19, Info: "7 cm breit / Inhalt: 1 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Tape Extensions", Typ: "3", Laenge: "25 cm", ArtikelID: "18601808", Preis: 18, Info: "7 cm breit / Inhalt: 1 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Tape Extensions", Typ: "1", Laenge: "25 cm", ArtikelID: "18601810", Preis: 18, Info: "7 cm breit / Inhalt: 1 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Tape Extensions", Typ: "10S", Laenge: "40 cm", ArtikelID: "18601071", Preis: 32, Info: "7 cm breit / Inhalt: 1 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Tape Extensions", Typ: "10A", Laenge: "40 cm", ArtikelID: "18601072", Preis: 32, Info: "7 cm breit / Inhalt: 1 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Tape Extensions", Typ: "L10", Laenge: "40 cm", ArtikelID: "18601780", Preis: 32, Info: "7 cm breit / Inhalt: 1 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Tape Extensions", Typ: "10G", Laenge: "40 cm", ArtikelID: "18601995", Preis: 32, Info: "7 cm breit / Inhalt: 1 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Tape Extensions", Typ: "9G.10 OM", Laenge: "40 cm", ArtikelID: "18601782", Preis: 32, Info: "7 cm breit / Inhalt: 1 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Tape Extensions", Typ: "9G", Laenge: "40 cm", ArtikelID: "18601996", Preis: 32, Info: "7 cm breit / Inhalt: 1 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Tape Extensions", Typ: "9.8G", Laenge: "40 cm", ArtikelID: "18601998", Preis: 32, Info: "7 cm breit / Inhalt: 1 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Tape Extensions", Typ: "9A", Laenge: "40 cm", ArtikelID: "18601999", Preis: 32, Info: "7 cm breit / Inhalt: 1 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Tape Extensions", Typ: "L8", Laenge: "40 cm", ArtikelID: "18601783", Preis: 32, Info: "7 cm breit / Inhalt: 1 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Tape Extensions", Typ: "8A", Laenge: "40 cm", ArtikelID: "18602000", Preis: 32, Info: "7 cm breit / Inhalt: 1 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Tape Extensions", Typ: "8A.9A", Laenge: "40 cm", ArtikelID: "18601073", Preis: 32, Info: "7 cm breit / Inhalt: 1 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Tape Extensions", Typ: "7G.8G OM", Laenge: "40 cm", ArtikelID: "18602001", Preis: 32, Info: "7 cm breit / Inhalt: 1 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Tape Extensions", Typ: "6G.8G", Laenge: "40 cm", ArtikelID: "18601788", Preis: 32, Info: "7 cm breit / Inhalt: 1 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Tape Extensions", Typ: "5RM", Laenge: "40 cm", ArtikelID: "18601790", Preis: 30, Info: "7 cm breit / Inhalt: 1 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Tape Extensions", Typ: "L6", Laenge: "40 cm", ArtikelID: "18601785", Preis: 30, Info: "7 cm breit / Inhalt: 1 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Tape Extensions", Typ: "L5", Laenge: "40 cm", ArtikelID: "18601786", Preis: 30, Info: "7 cm breit / Inhalt: 1 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Tape Extensions", Typ: "3.5 OM", Laenge: "40 cm", ArtikelID: "18602002", Preis: 32, Info: "7 cm breit / Inhalt: 1 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Tape Extensions", Typ: "3", Laenge: "40 cm", ArtikelID: "18601792", Preis: 30, Info: "7 cm breit / Inhalt: 1 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Tape Extensions", Typ: "1", Laenge: "40 cm", ArtikelID: "18601795", Preis: 30, Info: "7 cm breit / Inhalt: 1 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Tape Extensions", Typ: "10AA", Laenge: "40 cm", ArtikelID: "18602109", Preis: 32, Info: "7 cm breit / Inhalt: 1 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Tape Extensions", Typ: "10AA OM", Laenge: "40 cm", ArtikelID: "18602110", Preis: 32, Info: "7 cm breit / Inhalt: 1 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Tape Extensions", Typ: "8AA", Laenge: "40 cm", ArtikelID: "18602141", Preis: 32, Info: "7 cm breit / Inhalt: 1 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Doublehair", Typ: "10S", Laenge: "40 cm", ArtikelID: "18601953", Preis: 135, Info: "8 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Doublehair", Typ: "10A", Laenge: "40 cm", ArtikelID: "18601954", Preis: 135, Info: "8 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Doublehair", Typ: "L10", Laenge: "40 cm", ArtikelID: "18601955", Preis: 135, Info: "8 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Doublehair", Typ: "10G", Laenge: "40 cm", ArtikelID: "18601956", Preis: 135, Info: "8 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Doublehair", Typ: "9G.10 OM", Laenge: "40 cm", ArtikelID: "18601957", Preis: 135, Info: "8 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Doublehair", Typ: "9G", Laenge: "40 cm", ArtikelID: "18601958", Preis: 135, Info: "8 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Doublehair", Typ: "9.8G", Laenge: "40 cm", ArtikelID: "18601959", Preis: 135, Info: "8 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Doublehair", Typ: "9A", Laenge: "40 cm", ArtikelID: "18601960", Preis: 135, Info: "8 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Doublehair", Typ: "L8", Laenge: "40 cm", ArtikelID: "18601961", Preis: 135, Info: "8 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Doublehair", Typ: "8A", Laenge: "40 cm", ArtikelID: "18601962", Preis: 135, Info: "8 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Doublehair", Typ: "8A.9A", Laenge: "40 cm", ArtikelID: "18601963", Preis: 135, Info: "8 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Doublehair", Typ: "7G.8G OM", Laenge: "40 cm", ArtikelID: "18601964", Preis: 135, Info: "8 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Doublehair", Typ: "6G.8G", Laenge: "40 cm", ArtikelID: "18601965", Preis: 135, Info: "8 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Doublehair", Typ: "5RM", Laenge: "40 cm", ArtikelID: "18601966", Preis: 125, Info: "8 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Doublehair", Typ: "L6", Laenge: "40 cm", ArtikelID: "18601967", Preis: 125, Info: "8 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Doublehair", Typ: "L5", Laenge: "40 cm", ArtikelID: "18601968", Preis: 125, Info: "8 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Doublehair", Typ: "3.5 OM", Laenge: "40 cm", ArtikelID: "18601969", Preis: 135, Info: "8 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Doublehair", Typ: "3", Laenge: "40 cm", ArtikelID: "18601970", Preis: 125, Info: "8 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Doublehair", Typ: "1", Laenge: "40 cm", ArtikelID: "18601971", Preis: 125, Info: "8 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Doublehair", Typ: "10AA", Laenge: "40 cm", ArtikelID: "18602115", Preis: 135, Info: "8 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Doublehair", Typ: "10AA OM", Laenge: "40 cm", ArtikelID: "18602116", Preis: 135, Info: "8 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Doublehair", Typ: "8AA", Laenge: "40 cm", ArtikelID: "18602139", Preis: 135, Info: "8 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Doublehair", Typ: "10A", Laenge: "55 cm", ArtikelID: "18601972", Preis: 99, Info: "8 cm breit / Inhalt: 1 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Doublehair", Typ: "L10", Laenge: "55 cm", ArtikelID: "18601973", Preis: 99, Info: "8 cm breit / Inhalt: 1 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Doublehair", Typ: "10G", Laenge: "55 cm", ArtikelID: "18601974", Preis: 99, Info: "8 cm breit / Inhalt: 1 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Doublehair", Typ: "9G", Laenge: "55 cm", ArtikelID: "18601975", Preis: 99, Info: "8 cm breit / Inhalt: 1 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Doublehair", Typ: "9.8G", Laenge: "55 cm", ArtikelID: "18601976", Preis: 99, Info: "8 cm breit / Inhalt: 1 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Doublehair", Typ: "L8", Laenge: "55 cm", ArtikelID: "18601977", Preis: 99, Info: "8 cm breit / Inhalt: 1 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Doublehair", Typ: "8A", Laenge: "55 cm", ArtikelID: "18601978", Preis: 99, Info: "8 cm breit / Inhalt: 1 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Doublehair", Typ: "8A.9A", Laenge: "55 cm", ArtikelID: "18601979", Preis: 99, Info: "8 cm breit / Inhalt: 1 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Doublehair", Typ: "6G.8G", Laenge: "55 cm", ArtikelID: "18601980", Preis: 99, Info: "8 cm breit / Inhalt: 1 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Doublehair", Typ: "L5", Laenge: "55 cm", ArtikelID: "18601981", Preis: 89, Info: "8 cm breit / Inhalt: 1 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Doublehair", Typ: "3", Laenge: "55 cm", ArtikelID: "18601982", Preis: 89, Info: "8 cm breit / Inhalt: 1 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Doublehair", Typ: "1", Laenge: "55 cm", ArtikelID: "18601983", Preis: 89, Info: "8 cm breit / Inhalt: 1 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Invisible", Typ: "10S", Laenge: "40 cm", ArtikelID: "18602158", Preis: 52.5, Info: "4 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Invisible", Typ: "10A", Laenge: "40 cm", ArtikelID: "18602154", Preis: 52.5, Info: "4 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Invisible", Typ: "L10", Laenge: "40 cm", ArtikelID: "18602171", Preis: 52.5, Info: "4 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Invisible", Typ: "10G", Laenge: "40 cm", ArtikelID: "18602157", Preis: 52.5, Info: "4 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Invisible", Typ: "9G.10 OM", Laenge: "40 cm", ArtikelID: "18602170", Preis: 52.5, Info: "4 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Invisible", Typ: "9G", Laenge: "40 cm", ArtikelID: "18602169", Preis: 52.5, Info: "4 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Invisible", Typ: "9.8G", Laenge: "40 cm", ArtikelID: "18602167", Preis: 52.5, Info: "4 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Invisible", Typ: "9A", Laenge: "40 cm", ArtikelID: "18602168", Preis: 52.5, Info: "4 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Invisible", Typ: "L8", Laenge: "40 cm", ArtikelID: "18602174", Preis: 52.5, Info: "4 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Invisible", Typ: "8A", Laenge: "40 cm", ArtikelID: "18602164", Preis: 52.5, Info: "4 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Invisible", Typ: "8A.9A", Laenge: "40 cm", ArtikelID: "18602165", Preis: 52.5, Info: "4 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Invisible", Typ: "7G.8G OM", Laenge: "40 cm", ArtikelID: "18602163", Preis: 52.5, Info: "4 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Invisible", Typ: "6G.8G", Laenge: "40 cm", ArtikelID: "18602162", Preis: 52.5, Info: "4 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Invisible", Typ: "5RM", Laenge: "40 cm", ArtikelID: "18602161", Preis: 50, Info: "4 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Invisible", Typ: "L6", Laenge: "40 cm", ArtikelID: "18602173", Preis: 50, Info: "4 cm breit / Inhalt: 3 Stk."},
	{Behandlung: "Einsetzen", Produkt: "Easy Invisible", Typ: "L5", Laenge: "40 cm", ArtikelID: "18602172", Preis: 50, Info: "4 cm breit / Inhalt: 3 Stk."},
}
