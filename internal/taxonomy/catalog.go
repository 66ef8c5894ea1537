package taxonomy

// catalogTable maps Discogs "Parent---Label" strings, as emitted by the MAEST
// model, to canonical pairs.
var catalogTable = []entry{
	{"Electronic---Dubstep", Genre{"Bass", "Dubstep"}},
	{"Electronic---Drum n Bass", Genre{"Bass", "Drum & Bass"}},
	{"Electronic---Jungle", Genre{"Bass", "Drum & Bass"}},
	{"Electronic---Grime", Genre{"Bass", "Grime"}},
	{"Electronic---UK Garage", Genre{"Bass", "Garage"}},
	{"Electronic---Speed Garage", Genre{"Bass", "Garage"}},
	{"Electronic---Garage House", Genre{"Bass", "Garage"}},
	{"Electronic---Bassline", Genre{"Bass", "Leftfield Bass"}},
	{"Electronic---Halftime", Genre{"Bass", "Leftfield Bass"}},
	{"Electronic---Leftfield", Genre{"Bass", "Leftfield Bass"}},
	{"Electronic---House", Genre{"Electronic", "House"}},
	{"Electronic---Deep House", Genre{"Electronic", "Deep House"}},
	{"Electronic---Tech House", Genre{"Electronic", "House"}},
	{"Electronic---Tribal House", Genre{"Electronic", "House"}},
	{"Electronic---Acid House", Genre{"Electronic", "House"}},
	{"Electronic---Electro House", Genre{"Electronic", "House"}},
	{"Electronic---Euro House", Genre{"Electronic", "House"}},
	{"Electronic---Italo House", Genre{"Electronic", "House"}},
	{"Electronic---Ghetto House", Genre{"Electronic", "House"}},
	{"Electronic---Progressive House", Genre{"Electronic", "Progressive House"}},
	{"Electronic---Trance", Genre{"Electronic", "Trance"}},
	{"Electronic---Psy-Trance", Genre{"Electronic", "Trance"}},
	{"Electronic---Goa Trance", Genre{"Electronic", "Trance"}},
	{"Electronic---Progressive Trance", Genre{"Electronic", "Trance"}},
	{"Electronic---Hard Trance", Genre{"Electronic", "Trance"}},
	{"Electronic---Tech Trance", Genre{"Electronic", "Trance"}},
	{"Electronic---IDM", Genre{"Electronic", "IDM"}},
	{"Electronic---Breakbeat", Genre{"Electronic", "Breakbeat"}},
	{"Electronic---Breaks", Genre{"Electronic", "Breakbeat"}},
	{"Electronic---Progressive Breaks", Genre{"Electronic", "Breakbeat"}},
	{"Electronic---Big Beat", Genre{"Electronic", "Big Beat"}},
	{"Electronic---Glitch", Genre{"Electronic", "Glitch Hop"}},
	{"Electronic---Downtempo", Genre{"Chill", "Downtempo"}},
	{"Electronic---Ambient", Genre{"Chill", "Ambient"}},
	{"Electronic---Dark Ambient", Genre{"Chill", "Ambient"}},
	{"Electronic---Chillwave", Genre{"Chill", "Chillout"}},
	{"Electronic---Trip Hop", Genre{"Chill", "Trip Hop"}},
	{"Electronic---New Age", Genre{"Chill", "Ambient"}},
	{"Electronic---Drone", Genre{"Chill", "Ambient"}},
	{"Electronic---Techno", Genre{"Electronic", "House"}},
	{"Electronic---Minimal Techno", Genre{"Electronic", "House"}},
	{"Electronic---Deep Techno", Genre{"Electronic", "House"}},
	{"Electronic---Dub Techno", Genre{"Electronic", "House"}},
	{"Electronic---Acid", Genre{"Electronic", "House"}},
	{"Electronic---Electro", Genre{"Electronic", "Breakbeat"}},
	{"Electronic---Disco", Genre{"Electronic", "House"}},
	{"Electronic---Nu-Disco", Genre{"Electronic", "House"}},
	{"Electronic---Synthwave", Genre{"Electronic", "House"}},
	{"Electronic---Synth-pop", Genre{"Electronic", "House"}},
	{"Electronic---EBM", Genre{"Electronic", "House"}},
	{"Electronic---Industrial", Genre{"Electronic", "Breakbeat"}},
	{"Electronic---Noise", Genre{"Electronic", "IDM"}},
	{"Electronic---Experimental", Genre{"Electronic", "IDM"}},
	{"Electronic---Abstract", Genre{"Chill", "Ambient"}},
	{"Electronic---Dub", Genre{"Dub/Reggae", "Dub"}},
	{"Electronic---Vaporwave", Genre{"Chill", "Lofi"}},
	{"Electronic---Hip Hop", Genre{"Hip-Hop", "Hip-Hop"}},
	{"Electronic---Modern Classical", Genre{"Classical", "Modern/Contemporary"}},
	{"Electronic---Sound Collage", Genre{"Electronic", "IDM"}},
	{"Hip Hop---Bass Music", Genre{"Bass", "Leftfield Bass"}},
	{"Hip Hop---Boom Bap", Genre{"Hip-Hop", "Hip-Hop"}},
	{"Hip Hop---Conscious", Genre{"Hip-Hop", "Hip-Hop"}},
	{"Hip Hop---Gangsta", Genre{"Hip-Hop", "Hip-Hop"}},
	{"Hip Hop---Hardcore Hip-Hop", Genre{"Hip-Hop", "Hip-Hop"}},
	{"Hip Hop---Instrumental", Genre{"Hip-Hop", "Beats"}},
	{"Hip Hop---Jazzy Hip-Hop", Genre{"Hip-Hop", "Hip-Hop"}},
	{"Hip Hop---Pop Rap", Genre{"Hip-Hop", "Hip-Hop"}},
	{"Hip Hop---Trap", Genre{"Hip-Hop", "Trap"}},
	{"Hip Hop---Trip Hop", Genre{"Chill", "Trip Hop"}},
	{"Hip Hop---Turntablism", Genre{"Hip-Hop", "Hip-Hop"}},
	{"Hip Hop---Grime", Genre{"Bass", "Grime"}},
	{"Hip Hop---Cloud Rap", Genre{"Hip-Hop", "Hip-Hop"}},
	{"Hip Hop---Cut-up/DJ", Genre{"Hip-Hop", "Beats"}},
	{"Hip Hop---G-Funk", Genre{"Hip-Hop", "Hip-Hop"}},
	{"Hip Hop---Miami Bass", Genre{"Hip-Hop", "Hip-Hop"}},
	{"Hip Hop---RnB/Swing", Genre{"Blues/Soul", "R&B"}},
	{"Hip Hop---Crunk", Genre{"Hip-Hop", "Trap"}},
	{"Hip Hop---Bounce", Genre{"Hip-Hop", "Hip-Hop"}},
	{"Hip Hop---Electro", Genre{"Hip-Hop", "Hip-Hop"}},
	{"Hip Hop---Ragga HipHop", Genre{"Hip-Hop", "Hip-Hop"}},
	{"Hip Hop---Screw", Genre{"Hip-Hop", "Hip-Hop"}},
	{"Hip Hop---Thug Rap", Genre{"Hip-Hop", "Hip-Hop"}},
	{"Rock---Alternative Rock", Genre{"Pop/Rock", "Rock"}},
	{"Rock---Classic Rock", Genre{"Pop/Rock", "Rock"}},
	{"Rock---Hard Rock", Genre{"Pop/Rock", "Rock"}},
	{"Rock---Indie Rock", Genre{"Pop/Rock", "Indie"}},
	{"Rock---Pop Rock", Genre{"Pop/Rock", "Pop"}},
	{"Rock---Brit Pop", Genre{"Pop/Rock", "Pop"}},
	{"Rock---Grunge", Genre{"Pop/Rock", "Rock"}},
	{"Rock---Garage Rock", Genre{"Pop/Rock", "Rock"}},
	{"Rock---Blues Rock", Genre{"Blues/Soul", "Blues"}},
	{"Rock---Folk Rock", Genre{"Pop/Rock", "Folk"}},
	{"Rock---Country Rock", Genre{"Pop/Rock", "Country"}},
	{"Rock---Psychedelic Rock", Genre{"Pop/Rock", "Rock"}},
	{"Rock---Prog Rock", Genre{"Pop/Rock", "Rock"}},
	{"Rock---Art Rock", Genre{"Pop/Rock", "Rock"}},
	{"Rock---Post Rock", Genre{"Pop/Rock", "Rock"}},
	{"Rock---Shoegaze", Genre{"Pop/Rock", "Indie"}},
	{"Rock---Dream Pop", Genre{"Pop/Rock", "Indie"}},
	{"Rock---Soft Rock", Genre{"Pop/Rock", "Rock"}},
	{"Rock---Surf", Genre{"Pop/Rock", "Rock"}},
	{"Rock---Rockabilly", Genre{"Pop/Rock", "Rock"}},
	{"Rock---Rock & Roll", Genre{"Pop/Rock", "Rock"}},
	{"Rock---Acoustic", Genre{"Pop/Rock", "Folk"}},
	{"Rock---Southern Rock", Genre{"Pop/Rock", "Rock"}},
	{"Rock---Space Rock", Genre{"Pop/Rock", "Rock"}},
	{"Rock---Krautrock", Genre{"Electronic", "IDM"}},
	{"Rock---New Wave", Genre{"Pop/Rock", "Pop"}},
	{"Rock---Lo-Fi", Genre{"Chill", "Lofi"}},
	{"Rock---Math Rock", Genre{"Pop/Rock", "Rock"}},
	{"Rock---Noise", Genre{"Pop/Rock", "Rock"}},
	{"Rock---Experimental", Genre{"Pop/Rock", "Rock"}},
	{"Rock---Heavy Metal", Genre{"Metal", "Heavy Metal"}},
	{"Rock---Death Metal", Genre{"Metal", "Death Metal"}},
	{"Rock---Black Metal", Genre{"Metal", "Black Metal"}},
	{"Rock---Atmospheric Black Metal", Genre{"Metal", "Black Metal"}},
	{"Rock---Depressive Black Metal", Genre{"Metal", "Black Metal"}},
	{"Rock---Doom Metal", Genre{"Metal", "Doom"}},
	{"Rock---Funeral Doom Metal", Genre{"Metal", "Doom"}},
	{"Rock---Thrash", Genre{"Metal", "Thrash"}},
	{"Rock---Speed Metal", Genre{"Metal", "Thrash"}},
	{"Rock---Stoner Rock", Genre{"Metal", "Stoner/Sludge"}},
	{"Rock---Sludge Metal", Genre{"Metal", "Stoner/Sludge"}},
	{"Rock---Nu Metal", Genre{"Metal", "Heavy Metal"}},
	{"Rock---Power Metal", Genre{"Metal", "Heavy Metal"}},
	{"Rock---Progressive Metal", Genre{"Metal", "Heavy Metal"}},
	{"Rock---Gothic Metal", Genre{"Metal", "Heavy Metal"}},
	{"Rock---Folk Metal", Genre{"Metal", "Heavy Metal"}},
	{"Rock---Viking Metal", Genre{"Metal", "Heavy Metal"}},
	{"Rock---Funk Metal", Genre{"Metal", "Heavy Metal"}},
	{"Rock---Metalcore", Genre{"Metal", "Heavy Metal"}},
	{"Rock---Deathcore", Genre{"Metal", "Death Metal"}},
	{"Rock---Technical Death Metal", Genre{"Metal", "Death Metal"}},
	{"Rock---Melodic Death Metal", Genre{"Metal", "Death Metal"}},
	{"Rock---Post-Metal", Genre{"Metal", "Doom"}},
	{"Rock---Symphonic Rock", Genre{"Pop/Rock", "Rock"}},
	{"Rock---Grindcore", Genre{"Metal", "Thrash"}},
	{"Rock---Goregrind", Genre{"Metal", "Thrash"}},
	{"Rock---Punk", Genre{"Punk", "Punk"}},
	{"Rock---Hardcore", Genre{"Punk", "Hardcore"}},
	{"Rock---Post-Hardcore", Genre{"Punk", "Hardcore"}},
	{"Rock---Melodic Hardcore", Genre{"Punk", "Hardcore"}},
	{"Rock---Post-Punk", Genre{"Punk", "Post-Punk"}},
	{"Rock---Crust", Genre{"Punk", "Crust"}},
	{"Rock---Pop Punk", Genre{"Punk", "Skate Punk"}},
	{"Rock---Oi", Genre{"Punk", "Punk"}},
	{"Rock---Psychobilly", Genre{"Punk", "Punk"}},
	{"Rock---Power Violence", Genre{"Punk", "Hardcore"}},
	{"Rock---Emo", Genre{"Punk", "Post-Punk"}},
	{"Rock---Goth Rock", Genre{"Punk", "Post-Punk"}},
	{"Rock---Deathrock", Genre{"Punk", "Post-Punk"}},
	{"Rock---Coldwave", Genre{"Punk", "Post-Punk"}},
	{"Jazz---Bop", Genre{"Jazz", "Bebop"}},
	{"Jazz---Hard Bop", Genre{"Jazz", "Bebop"}},
	{"Jazz---Post Bop", Genre{"Jazz", "Bebop"}},
	{"Jazz---Cool Jazz", Genre{"Jazz", "Cool Jazz"}},
	{"Jazz---Modal", Genre{"Jazz", "Cool Jazz"}},
	{"Jazz---Free Jazz", Genre{"Jazz", "Free Jazz"}},
	{"Jazz---Free Improvisation", Genre{"Jazz", "Free Jazz"}},
	{"Jazz---Avant-garde Jazz", Genre{"Jazz", "Free Jazz"}},
	{"Jazz---Fusion", Genre{"Jazz", "Fusion"}},
	{"Jazz---Jazz-Funk", Genre{"Jazz", "Fusion"}},
	{"Jazz---Jazz-Rock", Genre{"Jazz", "Fusion"}},
	{"Jazz---Latin Jazz", Genre{"Jazz", "Latin Jazz"}},
	{"Jazz---Afro-Cuban Jazz", Genre{"Jazz", "Latin Jazz"}},
	{"Jazz---Swing", Genre{"Jazz", "Swing"}},
	{"Jazz---Big Band", Genre{"Jazz", "Swing"}},
	{"Jazz---Dixieland", Genre{"Jazz", "Swing"}},
	{"Jazz---Smooth Jazz", Genre{"Jazz", "Cool Jazz"}},
	{"Jazz---Soul-Jazz", Genre{"Jazz", "Fusion"}},
	{"Jazz---Contemporary Jazz", Genre{"Jazz", "Cool Jazz"}},
	{"Jazz---Bossa Nova", Genre{"Jazz", "Latin Jazz"}},
	{"Jazz---Gypsy Jazz", Genre{"Jazz", "Swing"}},
	{"Jazz---Ragtime", Genre{"Jazz", "Swing"}},
	{"Jazz---Afrobeat", Genre{"Jazz", "Fusion"}},
	{"Jazz---Space-Age", Genre{"Jazz", "Cool Jazz"}},
	{"Jazz---Easy Listening", Genre{"Jazz", "Cool Jazz"}},
	{"Classical---Baroque", Genre{"Classical", "Orchestral"}},
	{"Classical---Classical", Genre{"Classical", "Orchestral"}},
	{"Classical---Romantic", Genre{"Classical", "Orchestral"}},
	{"Classical---Impressionist", Genre{"Classical", "Orchestral"}},
	{"Classical---Modern", Genre{"Classical", "Modern/Contemporary"}},
	{"Classical---Contemporary", Genre{"Classical", "Modern/Contemporary"}},
	{"Classical---Post-Modern", Genre{"Classical", "Modern/Contemporary"}},
	{"Classical---Neo-Classical", Genre{"Classical", "Modern/Contemporary"}},
	{"Classical---Neo-Romantic", Genre{"Classical", "Orchestral"}},
	{"Classical---Medieval", Genre{"Classical", "Chamber"}},
	{"Classical---Renaissance", Genre{"Classical", "Chamber"}},
	{"Classical---Choral", Genre{"Classical", "Chamber"}},
	{"Classical---Opera", Genre{"Classical", "Opera"}},
	{"Blues---Chicago Blues", Genre{"Blues/Soul", "Blues"}},
	{"Blues---Delta Blues", Genre{"Blues/Soul", "Blues"}},
	{"Blues---Electric Blues", Genre{"Blues/Soul", "Blues"}},
	{"Blues---Country Blues", Genre{"Blues/Soul", "Blues"}},
	{"Blues---Texas Blues", Genre{"Blues/Soul", "Blues"}},
	{"Blues---Modern Electric Blues", Genre{"Blues/Soul", "Blues"}},
	{"Blues---Piano Blues", Genre{"Blues/Soul", "Blues"}},
	{"Blues---Jump Blues", Genre{"Blues/Soul", "Blues"}},
	{"Blues---Harmonica Blues", Genre{"Blues/Soul", "Blues"}},
	{"Blues---Louisiana Blues", Genre{"Blues/Soul", "Blues"}},
	{"Blues---Boogie Woogie", Genre{"Blues/Soul", "Blues"}},
	{"Blues---Rhythm & Blues", Genre{"Blues/Soul", "R&B"}},
	{"Funk / Soul---Funk", Genre{"Blues/Soul", "Funk"}},
	{"Funk / Soul---Soul", Genre{"Blues/Soul", "Soul"}},
	{"Funk / Soul---Rhythm & Blues", Genre{"Blues/Soul", "R&B"}},
	{"Funk / Soul---Contemporary R&B", Genre{"Blues/Soul", "R&B"}},
	{"Funk / Soul---Disco", Genre{"Blues/Soul", "Funk"}},
	{"Funk / Soul---Boogie", Genre{"Blues/Soul", "Funk"}},
	{"Funk / Soul---P.Funk", Genre{"Blues/Soul", "Funk"}},
	{"Funk / Soul---Free Funk", Genre{"Blues/Soul", "Funk"}},
	{"Funk / Soul---Neo Soul", Genre{"Blues/Soul", "Soul"}},
	{"Funk / Soul---Psychedelic", Genre{"Blues/Soul", "Funk"}},
	{"Funk / Soul---Gospel", Genre{"Blues/Soul", "Soul"}},
	{"Funk / Soul---Afrobeat", Genre{"Blues/Soul", "Funk"}},
	{"Funk / Soul---New Jack Swing", Genre{"Blues/Soul", "R&B"}},
	{"Funk / Soul---Swingbeat", Genre{"Blues/Soul", "R&B"}},
	{"Funk / Soul---UK Street Soul", Genre{"Blues/Soul", "Soul"}},
	{"Reggae---Dub", Genre{"Dub/Reggae", "Dub"}},
	{"Reggae---Reggae", Genre{"Dub/Reggae", "Reggae"}},
	{"Reggae---Roots Reggae", Genre{"Dub/Reggae", "Reggae"}},
	{"Reggae---Dancehall", Genre{"Dub/Reggae", "Reggae"}},
	{"Reggae---Ska", Genre{"Dub/Reggae", "Reggae"}},
	{"Reggae---Rocksteady", Genre{"Dub/Reggae", "Reggae"}},
	{"Reggae---Lovers Rock", Genre{"Dub/Reggae", "Reggae"}},
	{"Reggae---Ragga", Genre{"Dub/Reggae", "Reggae"}},
	{"Reggae---Reggae-Pop", Genre{"Dub/Reggae", "Reggae"}},
	{"Reggae---Calypso", Genre{"Dub/Reggae", "Reggae"}},
	{"Reggae---Soca", Genre{"Dub/Reggae", "Reggae"}},
	{"Pop---Ballad", Genre{"Pop/Rock", "Pop"}},
	{"Pop---Indie Pop", Genre{"Pop/Rock", "Indie"}},
	{"Pop---Vocal", Genre{"Pop/Rock", "Pop"}},
	{"Pop---Europop", Genre{"Pop/Rock", "Pop"}},
	{"Pop---Chanson", Genre{"Pop/Rock", "Pop"}},
	{"Pop---City Pop", Genre{"Pop/Rock", "Pop"}},
	{"Pop---J-pop", Genre{"Pop/Rock", "Pop"}},
	{"Pop---K-pop", Genre{"Pop/Rock", "Pop"}},
	{"Pop---Schlager", Genre{"Pop/Rock", "Pop"}},
	{"Pop---Bubblegum", Genre{"Pop/Rock", "Pop"}},
	{"Pop---Light Music", Genre{"Pop/Rock", "Pop"}},
	{"Pop---Novelty", Genre{"Pop/Rock", "Pop"}},
	{"Pop---Bollywood", Genre{"Pop/Rock", "Pop"}},
	{"Folk, World, & Country---Folk", Genre{"Pop/Rock", "Folk"}},
	{"Folk, World, & Country---Country", Genre{"Pop/Rock", "Country"}},
	{"Folk, World, & Country---Bluegrass", Genre{"Pop/Rock", "Country"}},
	{"Folk, World, & Country---Celtic", Genre{"Pop/Rock", "Folk"}},
	{"Folk, World, & Country---Gospel", Genre{"Blues/Soul", "Soul"}},
	{"Folk, World, & Country---Honky Tonk", Genre{"Pop/Rock", "Country"}},
	{"Folk, World, & Country---Hillbilly", Genre{"Pop/Rock", "Country"}},
	{"Folk, World, & Country---Nordic", Genre{"Pop/Rock", "Folk"}},
	{"Folk, World, & Country---African", Genre{"Blues/Soul", "Funk"}},
	{"Folk, World, & Country---Highlife", Genre{"Blues/Soul", "Funk"}},
	{"Folk, World, & Country---Fado", Genre{"Pop/Rock", "Folk"}},
	{"Folk, World, & Country---Flamenco", Genre{"Pop/Rock", "Folk"}},
	{"Latin---Bossanova", Genre{"Jazz", "Latin Jazz"}},
	{"Latin---Salsa", Genre{"Jazz", "Latin Jazz"}},
	{"Latin---Afro-Cuban", Genre{"Jazz", "Latin Jazz"}},
	{"Latin---Cumbia", Genre{"Pop/Rock", "Folk"}},
	{"Latin---Tango", Genre{"Pop/Rock", "Folk"}},
	{"Latin---Reggaeton", Genre{"Hip-Hop", "Hip-Hop"}},
	{"Latin---Samba", Genre{"Jazz", "Latin Jazz"}},
	{"Non-Music---Spoken Word", noGenre},
	{"Non-Music---Comedy", noGenre},
	{"Non-Music---Audiobook", noGenre},
	{"Non-Music---Dialogue", noGenre},
	{"Non-Music---Interview", noGenre},
	{"Non-Music---Field Recording", noGenre},
	{"Non-Music---Poetry", noGenre},
	{"Non-Music---Radioplay", noGenre},
	{"Non-Music---Promotional", noGenre},
	{"Non-Music---Education", noGenre},
	{"Non-Music---Monolog", noGenre},
	{"Non-Music---Political", noGenre},
	{"Non-Music---Religious", noGenre},
	{"Stage & Screen---Soundtrack", Genre{"Classical", "Orchestral"}},
	{"Stage & Screen---Score", Genre{"Classical", "Orchestral"}},
	{"Stage & Screen---Musical", Genre{"Pop/Rock", "Pop"}},
	{"Stage & Screen---Theme", Genre{"Pop/Rock", "Pop"}},
	{"Brass & Military---Brass Band", Genre{"Jazz", "Swing"}},
	{"Brass & Military---Marches", Genre{"Classical", "Orchestral"}},
	{"Brass & Military---Military", Genre{"Classical", "Orchestral"}},
}
