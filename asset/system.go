package asset

// DefaultSystemConfig is an annotated system file equivalent to the built-in defaults
// orrery -print-config writes it as a starting point for custom systems
const DefaultSystemConfig = `# orrery system description
# Every key is optional; omitted keys keep their built-in values.

assets_dir = "assets/textures"

# === Star ===
[star]
mass = 1000
radius = 5
color = "#ffdd00"
texture = "sun.png"
intensity = 10
light_distance = 5000
light_decay = 0

# === Planets, innermost first ===
# velocity is the scalar orbital speed; the placed velocity is velocity/10 along +Z

[[planets]]
name = "Tatooine"
mass = 1.5
radius = 1.6
distance = 12
velocity = 1.8
color = "#d6c292"
texture = "tatooine.png"

[[planets]]
name = "Coruscant"
mass = 3
radius = 2.2
distance = 18
velocity = 1.6
color = "#4e7fbb"
texture = "coruscant.png"

[[planets]]
name = "Naboo"
mass = 2.2
radius = 1.9
distance = 24
velocity = 1.4
color = "#3d995e"
texture = "naboo.png"

[[planets]]
name = "Hoth"
mass = 1.8
radius = 1.5
distance = 30
velocity = 1.2
color = "#eeeeff"
texture = "hoth.png"

[[planets]]
name = "Dagobah"
mass = 1.3
radius = 1.4
distance = 36
velocity = 1.1
color = "#4a633d"
texture = "dagobah.png"

[[planets]]
name = "Mustafar"
mass = 2.8
radius = 1.8
distance = 44
velocity = 0.9
color = "#c13e0e"
texture = "mustafar.png"

[[planets]]
name = "Kashyyyk"
mass = 2.5
radius = 2.0
distance = 52
velocity = 0.8
color = "#2d7d46"
texture = "kashyyyk.png"

[[planets]]
name = "Kamino"
mass = 2.0
radius = 1.7
distance = 60
velocity = 0.7
color = "#1a3a59"
texture = "kamino.png"

# === Asteroid belt ===
[belt]
inner_radius = 68
outer_radius = 76
count = 300
min_size = 0.1
max_size = 0.4
color = "#888888"

# === Comets (none by default) ===
# [[comets]]
# name = "Halley"
# mass = 0.1
# radius = 0.5
# position = [80, 2, 0]
# velocity = [0, 0, -1.5]
# color = "#ccddff"
# tail_color = "#88aaff"

# === Background ===
[starfield]
count = 5000
radius = 4000
min_size = 0.1
max_size = 10
flicker_percent = 0.8
flicker_speed = 0.1
flicker_min = 0.1
flicker_max = 1.0
white_percent = 0.7
blue_percent = 0.1
red_percent = 0.1
yellow_percent = 0.1

[camera]
position = [0, 50, 100]
target = [0, 0, 0]
fov = 70
near = 0.1
far = 10000
damping = 0.05
min_distance = 5
max_distance = 500
track_offset = [0, 10, 30]

# mode: "prescribed" (each body follows its own kinematics) or "gravity"
# gravitational_constant <= 0 uses G = 1
# seed = 0 seeds from the clock
[physics]
mode = "prescribed"
gravitational_constant = 1
seed = 0

[engine]
tick_interval = "16ms"
frame_interval = "16ms"
simulation_speed = 1.0
star_size = 1.0
orbits_visible = true
labels_visible = true

[server]
addr = ":8080"
snapshot_rate = 30
command_rate = 10
command_burst = 20
allowed_origins = []

[audio]
enabled = false
volume = 0.3
`
