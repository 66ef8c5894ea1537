package taxonomy

// tagTable maps observed ID3 genre strings to canonical pairs. Order matters:
// the case-insensitive fallback returns the first matching entry.
var tagTable = []entry{
	{"Dubstep", Genre{"Bass", "Dubstep"}},
	{"DubStep", Genre{"Bass", "Dubstep"}},
	{"dubstep", Genre{"Bass", "Dubstep"}},
	{"Deep Dubstep", Genre{"Bass", "Deep Dubstep"}},
	{"Deep dubstep", Genre{"Bass", "Deep Dubstep"}},
	{"Vocal Deep Dubstep", Genre{"Bass", "Deep Dubstep"}},
	{"DafuQ! [Dubstep]", Genre{"Bass", "Dubstep"}},
	{"Dirty/Heavy Dubstep/Grime", Genre{"Bass", "Dubstep"}},
	{"Dirty/heavy Dubstep/grime", Genre{"Bass", "Dubstep"}},
	{"Heavy Dubstep/Grime", Genre{"Bass", "Dubstep"}},
	{"Ambient Dubstep", Genre{"Chill", "Chillstep"}},
	{"LoveStep", Genre{"Bass", "Dubstep"}},
	{"Dubstep,dub", Genre{"Bass", "Dubstep"}},
	{"Dubstep/Grime", Genre{"Bass", "Grime"}},
	{"Dubstep / Grime / Funky", Genre{"Bass", "Grime"}},
	{"Dubstep / Riddim", Genre{"Bass", "Riddim"}},
	{"Dubstep / Trap", Genre{"Hip-Hop", "Trap"}},
	{"Dubstep / 2step ", Genre{"Bass", "Garage"}},
	{"Dubstep / 2step", Genre{"Bass", "Garage"}},
	{"FutureGarage", Genre{"Bass", "Garage"}},
	{"Garage / Bassline / Grime", Genre{"Bass", "Garage"}},
	{"Deep Dubstep, Future Garage", Genre{"Bass", "Garage"}},
	{"Bass", Genre{"Bass", "Leftfield Bass"}},
	{"Bass Music", Genre{"Bass", "Leftfield Bass"}},
	{"Freeform Bass", Genre{"Bass", "Freeform Bass"}},
	{"Leftfield Bass", Genre{"Bass", "Leftfield Bass"}},
	{"Drum & Bass", Genre{"Bass", "Drum & Bass"}},
	{"DafuQ! [DnB]", Genre{"Bass", "Drum & Bass"}},
	{"Electronic", Genre{"Electronic", "House"}},
	{"Electonic", Genre{"Electronic", "House"}},
	{"electronic", Genre{"Electronic", "House"}},
	{"House", Genre{"Electronic", "House"}},
	{"Deep House", Genre{"Electronic", "Deep House"}},
	{"Classic Progressive House", Genre{"Electronic", "Progressive House"}},
	{"IDM, Downtempo", Genre{"Electronic", "IDM"}},
	{"Big Beat", Genre{"Electronic", "Big Beat"}},
	{"Breakbeat", Genre{"Electronic", "Breakbeat"}},
	{"Dance", Genre{"Electronic", "House"}},
	{"Chillout", Genre{"Chill", "Chillout"}},
	{"Chill Out", Genre{"Chill", "Chillout"}},
	{"Chill/The XXX", Genre{"Chill", "Chillout"}},
	{"DafuQ! [Chill]", Genre{"Chill", "Chillout"}},
	{"Chillstep", Genre{"Chill", "Chillstep"}},
	{"Chill Step", Genre{"Chill", "Chillstep"}},
	{"Downtempo", Genre{"Chill", "Downtempo"}},
	{"Trip Hop", Genre{"Chill", "Trip Hop"}},
	{"Abstract", Genre{"Chill", "Ambient"}},
	{"Glitch Hop", Genre{"Electronic", "Glitch Hop"}},
	{"Glitch-Hop", Genre{"Electronic", "Glitch Hop"}},
	{"Psychedelic Trance", Genre{"Electronic", "Trance"}},
	{"Hip-Hop", Genre{"Hip-Hop", "Hip-Hop"}},
	{"Hip-Hop Beats", Genre{"Hip-Hop", "Beats"}},
	{"Beats", Genre{"Hip-Hop", "Beats"}},
	{"Trap", Genre{"Hip-Hop", "Trap"}},
	{"DafuQ! [Trap]", Genre{"Hip-Hop", "Trap"}},
	{"Gangsta", Genre{"Hip-Hop", "Hip-Hop"}},
	{"Dub", Genre{"Dub/Reggae", "Dub"}},
	{"Dub / Reggae", Genre{"Dub/Reggae", "Dub"}},
	{"Blues", Genre{"Blues/Soul", "Blues"}},
	{"R&B", Genre{"Blues/Soul", "R&B"}},
	{"Pop", Genre{"Pop/Rock", "Pop"}},
	{"Country", Genre{"Pop/Rock", "Country"}},
	{"Remix", Genre{"Electronic", "House"}},
	{"DafuQ! [Hipster]", Genre{"Pop/Rock", "Indie"}},
	{"Other", noGenre},
	{"Kulemina", noGenre},
}
